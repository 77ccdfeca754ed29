package dto

// DeviceRequest carries the raw, client-observable device attributes of a request.
type DeviceRequest struct {
	IP          string       `json:"ip"`
	UA          string       `json:"ua"`
	Platform    string       `json:"platform"`
	Country     string       `json:"country"`
	Name        string       `json:"name"`
	Fingerprint *Fingerprint `json:"fingerprint,omitempty"`
}

// Fingerprint is the IP-independent attribute tuple a device is recognized by.
type Fingerprint struct {
	UserAgent    string `json:"userAgent"`
	Platform     string `json:"platform"`
	Language     string `json:"language"`
	Timezone     string `json:"timezone"`
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	ColorDepth   int    `json:"colorDepth"`
}

// IsZero reports whether no attribute was observed. A zero tuple identifies nothing.
func (f *Fingerprint) IsZero() bool {
	return f == nil || *f == Fingerprint{}
}

type SessionOptions struct {
	DeviceName  string
	Fingerprint *Fingerprint
}
