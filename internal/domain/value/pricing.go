package value

type PricingMode string

const (
	PricingPerUnit   PricingMode = "per_unit"
	PricingTotalLine PricingMode = "total_line"
)

func (m PricingMode) String() string {
	return string(m)
}

// EmailOfferStatus классифицирует разобранное письмо.
type EmailOfferStatus string

const (
	EmailOfferParsed      EmailOfferStatus = "parsed"
	EmailOfferNeedsReview EmailOfferStatus = "needs_review"
)

type OfferMode string

const (
	OfferModeTakeAll OfferMode = "take_all"
	OfferModeLines   OfferMode = "lines"
)

type OfferSource string

const (
	OfferSourceAPI   OfferSource = "api"
	OfferSourceEmail OfferSource = "email"
)

// OfferStatusSubmitted единственный ненулевой статус, который принимает таблица offers.
const OfferStatusSubmitted = "submitted"

type RoundStatus string

const (
	RoundStatusLive   RoundStatus = "live"
	RoundStatusClosed RoundStatus = "closed"
)
