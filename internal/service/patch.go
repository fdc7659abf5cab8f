package service

// PatchID is embedded by every update payload.
type PatchID struct {
	ID uint `json:"id" binding:"required"`
}

// TargetID returns the id of the row being updated.
func (p PatchID) TargetID() uint {
	return p.ID
}
