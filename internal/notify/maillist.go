package notify

import (
	"encoding/json"
	"fmt"
	"os"
)

type mailList struct {
	Groups []mailGroup `json:"groups"`
}

type mailGroup struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

// ResolveGroup reads the mailing-list file and returns the member addresses
// of the named distribution group.
func ResolveGroup(path, group string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mailing list: %w", err)
	}

	var list mailList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse mailing list %s: %w", path, err)
	}

	for _, g := range list.Groups {
		if g.Name == group {
			if len(g.Members) == 0 {
				return nil, fmt.Errorf("%w: %q has no members", ErrUnknownGroup, group)
			}
			return g.Members, nil
		}
	}
	return nil, fmt.Errorf("%w: %q not in %s", ErrUnknownGroup, group, path)
}
