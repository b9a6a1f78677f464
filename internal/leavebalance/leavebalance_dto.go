package leavebalance

type BalanceResponse struct {
	LeaveTypeID   string `json:"leave_type_id"`
	LeaveType     string `json:"leave_type"`
	MaxDays       int    `json:"max_days"`
	UsedDays      int    `json:"used_days"`
	RemainingDays int    `json:"remaining_days"`
}

type InitBalancesResponse struct {
	Year     int   `json:"year"`
	Inserted int64 `json:"inserted"`
}

func mapToBalanceResponses(rows []BalanceRow) []BalanceResponse {
	resp := make([]BalanceResponse, 0, len(rows))
	for _, r := range rows {
		resp = append(resp, BalanceResponse{
			LeaveTypeID:   r.LeaveTypeID,
			LeaveType:     r.LeaveType,
			MaxDays:       r.MaxDays,
			UsedDays:      r.UsedDays,
			RemainingDays: r.MaxDays - r.UsedDays,
		})
	}
	return resp
}
