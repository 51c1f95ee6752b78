package bid

type Outcome string

const (
	OutcomeAccepted  Outcome = "accepted"
	OutcomeRejected  Outcome = "rejected"
	OutcomeWithdrawn Outcome = "withdrawn"
)

func (o Outcome) String() string {
	return string(o)
}

func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeAccepted, OutcomeRejected, OutcomeWithdrawn:
		return true
	default:
		return false
	}
}

// RejectReason is the audited business reason for a rejected bid.
type RejectReason string

const (
	RejectReasonNone             RejectReason = ""
	RejectReasonTooLow           RejectReason = "bid_too_low"
	RejectReasonAuctionNotActive RejectReason = "auction_not_active"
	RejectReasonAuctionExpired   RejectReason = "auction_expired"
	RejectReasonSelfBidding      RejectReason = "self_bidding_forbidden"
)

func (r RejectReason) String() string {
	return string(r)
}
