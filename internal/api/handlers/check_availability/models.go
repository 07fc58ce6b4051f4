package check_availability

// AvailabilityResponse результат проверки конфликтов ресурса
type AvailabilityResponse struct {
	ResourceKind     string `json:"resourceKind"`
	ResourceID       int64  `json:"resourceId"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	ExcludeBookingID *int64 `json:"excludeBookingId,omitempty"`
	Available        bool   `json:"available"`
}
