// Package policy holds the ownership rules that gate lifecycle transitions and
// ownership-scoped reads. The functions are pure: callers load the entities,
// the policy only answers allow or deny.
package policy

import (
	"github.com/Baaaki/gigflow/internal/models"
	"github.com/google/uuid"
)

// IsGigOwner reports whether actor posted the gig.
func IsGigOwner(actorID uuid.UUID, gig *models.Gig) bool {
	return gig != nil && actorID != uuid.Nil && gig.OwnerID == actorID
}

// IsBidOwner reports whether actor is the freelancer who placed the bid.
func IsBidOwner(actorID uuid.UUID, bid *models.Bid) bool {
	return bid != nil && actorID != uuid.Nil && bid.FreelancerID == actorID
}

// CanViewGigBids allows the gig owner and anyone who has bid on the gig.
func CanViewGigBids(actorID uuid.UUID, gig *models.Gig, hasBidOnGig bool) bool {
	if actorID == uuid.Nil || gig == nil {
		return false
	}
	return IsGigOwner(actorID, gig) || hasBidOnGig
}

// CanBidOnGig rejects self-bidding; availability of the gig is checked separately.
func CanBidOnGig(actorID uuid.UUID, gig *models.Gig) bool {
	return gig != nil && actorID != uuid.Nil && !IsGigOwner(actorID, gig)
}
