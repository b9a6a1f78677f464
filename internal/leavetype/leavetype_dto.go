package leavetype

type CreateLeaveTypeRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	MaxDays     *int   `json:"max_days" binding:"omitempty,min=0"`
}

type UpdateLeaveTypeRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	MaxDays     *int   `json:"max_days" binding:"required,min=0"`
}

type LeaveTypeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MaxDays     int    `json:"max_days"`
}

// UpdateResult tells the handler whether the stored row actually changed.
type UpdateResult struct {
	LeaveType LeaveTypeResponse
	Changed   bool
}

func mapToResponse(lt LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:          lt.ID.String(),
		Name:        lt.Name,
		Description: lt.Description,
		MaxDays:     lt.MaxDays,
	}
}

func mapToListResponse(items []LeaveType) []LeaveTypeResponse {
	resp := make([]LeaveTypeResponse, 0, len(items))
	for _, lt := range items {
		resp = append(resp, mapToResponse(lt))
	}
	return resp
}
