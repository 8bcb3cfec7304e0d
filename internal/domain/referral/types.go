package referral

import (
	"errors"
	"strings"
)

var (
	ErrEmptyGroupID      = errors.New("group id cannot be empty")
	ErrEmptyNewMemberID  = errors.New("new member id cannot be empty")
	ErrNotReferred       = errors.New("join event has no distinct referrer")
	ErrInvalidVoucherMix = errors.New("reward entry must grant at least one voucher")
	ErrInvalidPolicy     = errors.New("invalid reward policy")
)

// Referral distinguishes a join without referrer, a self-referral and a
// referral by another user.
type Referral interface {
	isReferral()
}

type NoReferral struct{}

type SelfReferral struct{}

type ReferredBy struct {
	ReferrerID string
}

func (NoReferral) isReferral()   {}
func (SelfReferral) isReferral() {}
func (ReferredBy) isReferral()   {}

// ResolveReferral treats a missing or blank referrer as no referral.
func ResolveReferral(newMemberID string, referrerID *string) Referral {
	if referrerID == nil {
		return NoReferral{}
	}
	id := strings.TrimSpace(*referrerID)
	switch id {
	case "":
		return NoReferral{}
	case newMemberID:
		return SelfReferral{}
	default:
		return ReferredBy{ReferrerID: id}
	}
}

type JoinEvent struct {
	GroupID     string
	NewMemberID string
	Referral    Referral
}

func NewJoinEvent(groupID, newMemberID string, referrerID *string) (JoinEvent, error) {
	groupID = strings.TrimSpace(groupID)
	newMemberID = strings.TrimSpace(newMemberID)
	if groupID == "" {
		return JoinEvent{}, ErrEmptyGroupID
	}
	if newMemberID == "" {
		return JoinEvent{}, ErrEmptyNewMemberID
	}
	return JoinEvent{
		GroupID:     groupID,
		NewMemberID: newMemberID,
		Referral:    ResolveReferral(newMemberID, referrerID),
	}, nil
}

// ReferrerID is set only for a referral by another user.
func (e JoinEvent) ReferrerID() (string, bool) {
	if r, ok := e.Referral.(ReferredBy); ok {
		return r.ReferrerID, true
	}
	return "", false
}

type Reason string

const (
	ReasonGroupNotEnrolled Reason = "group-not-enrolled"
	ReasonSelfOrNoReferral Reason = "self-or-no-referral"
	ReasonAlreadyRewarded  Reason = "already-rewarded"
)

func (r Reason) String() string {
	return string(r)
}

type Decision struct {
	Eligible   bool
	Reason     Reason
	ReferrerID string
}

func Eligible(referrerID string) Decision {
	return Decision{Eligible: true, ReferrerID: referrerID}
}

func Ineligible(reason Reason) Decision {
	return Decision{Reason: reason}
}
