package rest

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nadir-k/streamhub_api/internal/model"
	"github.com/nadir-k/streamhub_api/util/values"
)

// PromoteMemberHelper applies the only write in the system: a role change on
// a community member, allowed solely to the community's creator.
func (api *API) PromoteMemberHelper(ctx context.Context, communityID, callerID uuid.UUID, req model.PromoteMemberRequest) (model.CommunityMember, string, string, error) {
	community, err := api.GetCommunityByID(ctx, communityID)
	if err == ErrCommunityNotFound {
		return model.CommunityMember{}, values.NotFound, "community not found", err
	}
	if err != nil {
		return model.CommunityMember{}, values.Error, "failed to get community", err
	}

	if community.CreatorID != callerID {
		return model.CommunityMember{}, values.NotAllowed, "only the community creator can promote members",
			fmt.Errorf("caller %s is not creator of community %s", callerID, communityID)
	}

	member, err := api.UpdateMemberRole(ctx, communityID, req.TargetProfileID, promotionRole(req.Role))
	if err == ErrMemberNotFound {
		return model.CommunityMember{}, values.NotFound, "member not found", err
	}
	if err != nil {
		return model.CommunityMember{}, values.Error, "failed to promote member", err
	}

	return member, values.Success, "member promoted", nil
}

// promotionRole defaults the target role to moderator when unspecified.
func promotionRole(requested string) string {
	if requested == "" {
		return values.RoleModerator
	}
	return requested
}
