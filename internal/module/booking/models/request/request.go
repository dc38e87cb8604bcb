package request

type CreateBooking struct {
	TripID           string `json:"trip_id" validate:"required,uuid"`
	TripDateID       string `json:"trip_date_id" validate:"required,uuid"`
	ParticipantCount int    `json:"participant_count" validate:"required,min=1"`
	ReferrerID       string `json:"referrer_id" validate:"omitempty,uuid"`
}

type Decline struct {
	Reason string `json:"reason" validate:"max=500"`
}

type Cancel struct {
	Reason string `json:"reason" validate:"max=500"`
}

type Complete struct {
	// Override allows completing before the trip date has ended.
	Override bool `json:"override"`
}
