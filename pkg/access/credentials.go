package access

import (
	"encoding/json"
	"fmt"

	"tableflip.dev/sked/pkg/store"
)

const credentialsKey = "credentials"

// Credentials is the verified identity persisted between sessions.
type Credentials struct {
	Verified  bool   `json:"verified"`
	Code      string `json:"code"`
	GivenName string `json:"givenName"`
	LastName  string `json:"lastName"`
}

// DisplayName renders "Last, Given" the way the profile header shows it.
func (c Credentials) DisplayName() string {
	if c.LastName == "" && c.GivenName == "" {
		return ""
	}
	return fmt.Sprintf("%s, %s", c.LastName, c.GivenName)
}

// LoadCredentials reads the persisted credentials; missing or corrupt data
// yields the zero value.
func LoadCredentials(p store.Persistence) Credentials {
	var c Credentials
	raw := p.Load(credentialsKey, nil)
	if raw == nil {
		return c
	}
	if err := json.Unmarshal(raw, &c); err != nil {
		return Credentials{}
	}
	return c
}

// SaveCredentials persists the verified identity.
func SaveCredentials(p store.Persistence, c Credentials) bool {
	data, err := json.Marshal(c)
	if err != nil {
		return false
	}
	return p.Save(credentialsKey, data)
}

// ClearCredentials drops the persisted identity (logout, or a revoked code).
func ClearCredentials(p store.Persistence) bool {
	return p.Erase(credentialsKey)
}
