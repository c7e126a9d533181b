package health

// Service encapsulates the liveness payload for the root endpoint.
type Service struct{}

// NewService constructs a new health service.
func NewService() *Service {
	return &Service{}
}

// Status returns the backend liveness message.
func (s *Service) Status() map[string]string {
	return map[string]string{"message": "CareerCompass Backend Running"}
}
