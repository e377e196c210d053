package ig

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
	"github.com/larriantoniy/ig_user_client/internal/domain"
)

const deviceIDPrefix = "android-"

// NewDeviceIdentity returns a random identity, or a stable one derived from seed when seed is set.
func NewDeviceIdentity(seed string) domain.DeviceIdentity {
	if seed != "" {
		return seededDeviceIdentity(seed)
	}

	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand does not fail on supported platforms
		panic(err)
	}
	return domain.DeviceIdentity{
		DeviceID:  deviceIDPrefix + hex.EncodeToString(b[:]),
		InstallID: uuid.NewString(),
	}
}

func seededDeviceIdentity(seed string) domain.DeviceIdentity {
	sum := sha256.Sum256([]byte(seed))
	return domain.DeviceIdentity{
		DeviceID:  deviceIDPrefix + hex.EncodeToString(sum[:8]),
		InstallID: uuid.NewSHA1(uuid.NameSpaceOID, sum[:]).String(),
	}
}
