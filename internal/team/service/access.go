package service

import (
	"context"

	"github.com/disgoorg/snowflake/v2"
)

// Role names checked before either workflow runs. These are guild role
// names, matched case-insensitively by the role directory.
const (
	RoleJammer    = "JAMMER"
	RoleOrganizer = "ORGANIZER"
)

// CanProvision reports whether the user may create team channels. Either
// the JAMMER or the ORGANIZER role suffices.
func (s *Service) CanProvision(ctx context.Context, guildID, userID snowflake.ID) (bool, error) {
	jammer, err := s.roles.HasRole(ctx, guildID, userID, RoleJammer)
	if err != nil {
		return false, err
	}
	if jammer {
		return true, nil
	}
	return s.roles.HasRole(ctx, guildID, userID, RoleOrganizer)
}

// CanTearDown reports whether the user may remove team channels. Only
// organizers may.
func (s *Service) CanTearDown(ctx context.Context, guildID, userID snowflake.ID) (bool, error) {
	return s.roles.HasRole(ctx, guildID, userID, RoleOrganizer)
}
