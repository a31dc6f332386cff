package policy

import (
	"testing"

	"github.com/templui/profiles/internal/model"
)

func TestOwnershipRules(t *testing.T) {
	owner := &model.User{ID: "u1"}
	stranger := &model.User{ID: "u2"}
	admin := &model.User{ID: "u3", IsAdmin: true}
	adminOwner := &model.User{ID: "u1", IsAdmin: true}
	profile := &model.Profile{ID: "p1", UserID: "u1"}

	tests := []struct {
		name         string
		actor        *model.User
		record       Owned
		wantOwner    bool
		wantReadable bool
	}{
		{"owner", owner, profile, true, true},
		{"stranger", stranger, profile, false, false},
		{"admin not owner", admin, profile, false, true},
		{"admin owner", adminOwner, profile, true, true},
		{"nil actor", nil, profile, false, false},
		{"nil profile", owner, (*model.Profile)(nil), false, false},
		{"empty ids", &model.User{}, &model.Profile{}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOwner(tt.actor, tt.record); got != tt.wantOwner {
				t.Errorf("IsOwner = %v, want %v", got, tt.wantOwner)
			}
			if got := IsAdminOrOwner(tt.actor, tt.record); got != tt.wantReadable {
				t.Errorf("IsAdminOrOwner = %v, want %v", got, tt.wantReadable)
			}
		})
	}
}
