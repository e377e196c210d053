package domain

// Credentials are fixed for the lifetime of a client.
type Credentials struct {
	Username string
	Password string
}

// DeviceIdentity is sent with the login payload only.
type DeviceIdentity struct {
	DeviceID  string // android-<16 hex>
	InstallID string // uuid
}
