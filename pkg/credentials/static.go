package credentials

// Static is a Provider wrapper for a fixed credential set
type Static struct {
	credentials Credentials
}

func NewStatic(c Credentials) (*Static, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &Static{credentials: c}, nil
}

func (s *Static) Credentials() Credentials {
	return s.credentials
}
