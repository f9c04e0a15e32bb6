package dto

// ── Shared mutation responses ─────────────────────────────────────────────────

// CreatedResponse is the 201 body for every create: {"id": …, "mensaje": …}.
type CreatedResponse struct {
	ID      uint   `json:"id"`
	Mensaje string `json:"mensaje"`
}

// MensajeResponse is the 200 body for updates and deletes.
type MensajeResponse struct {
	Mensaje string `json:"mensaje"`
}
