package server

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"lotmarket/internal/domain/entity"
	"lotmarket/internal/domain/service/award"
	"lotmarket/internal/domain/service/ingest"
	"lotmarket/internal/domain/service/offer"
	"lotmarket/internal/domain/value"
	"lotmarket/pkg/rest"
)

func newDomainSubmission(request rest.OfferRequest) offer.Submission {
	sub := offer.Submission{
		Mode: value.OfferMode(request.Mode),
		Lines: lo.Map(request.Lines, func(l rest.OfferLineRequest, _ int) offer.SubmissionLine {
			return offer.SubmissionLine{LineRef: l.LineRef, UnitPrice: l.UnitPrice, Qty: l.Qty}
		}),
	}

	if request.Total != nil {
		sub.Total = *request.Total
	}

	return sub
}

func newRESTOffer(o *entity.Offer) rest.Offer {
	return rest.Offer{
		ID:          o.ID.String(),
		LotID:       lo.FromPtr(uuidString(o.LotID)),
		RoundID:     uuidString(o.RoundID),
		Mode:        string(o.Mode),
		Currency:    o.Currency,
		TotalAmount: o.TotalAmount,
		Status:      o.Status,
		Lines: lo.Map(o.Lines, func(l entity.OfferLine, _ int) rest.OfferLine {
			return rest.OfferLine{
				LineItemID:     l.LineItemID.String(),
				LineRef:        l.LineRef,
				UnitPrice:      l.UnitPrice,
				Qty:            l.Qty,
				ExtendedAmount: l.ExtendedAmount,
			}
		}),
	}
}

func newRESTLot(l *entity.Lot) rest.Lot {
	return rest.Lot{
		ID:                l.ID.String(),
		Title:             l.Title,
		Currency:          l.Currency,
		Status:            l.Status.String(),
		POCount:           l.POCount,
		ExpectedPOCount:   l.ExpectedPOCount,
		OffersReceivedAt:  timeString(l.OffersReceivedAt),
		SaleInProgressAt:  timeString(l.SaleInProgressAt),
		ProcessingAt:      timeString(l.ProcessingAt),
		OrderProcessingAt: timeString(l.OrderProcessingAt),
		SoldAt:            timeString(l.SoldAt),
		ClosedAt:          timeString(l.ClosedAt),
	}
}

func newRESTInviteResults(res award.InviteResults) rest.InviteResults {
	out := rest.InviteResults{
		Invite: rest.Invite{
			Token:   res.Invite.Token,
			LotID:   res.Invite.LotID.String(),
			BuyerID: res.Invite.BuyerID.String(),
			RoundID: uuidString(res.Invite.RoundID),
		},
		IsWinner:    res.IsWinner,
		AwardsTotal: res.AwardsTotal,
		Awards: lo.Map(res.Awards, func(a entity.AwardedLine, _ int) rest.AwardedLine {
			return rest.AwardedLine{
				ID:             a.ID.String(),
				LineItemID:     a.LineItemID.String(),
				RoundID:        uuidString(a.RoundID),
				UnitPrice:      a.UnitPrice,
				Qty:            a.Qty,
				ExtendedAmount: a.ExtendedAmount,
			}
		}),
	}

	if res.EffectiveRound != nil {
		out.EffectiveRound = &rest.EffectiveRound{
			ID:     res.EffectiveRound.ID.String(),
			Number: res.EffectiveRound.Number,
			Source: string(res.EffectiveRound.Source),
		}
	}

	return out
}

func newRESTPollResponse(res ingest.PollResult) rest.PollResponse {
	return rest.PollResponse{
		Processed: res.Processed,
		Messages: lo.Map(res.Results, func(m ingest.MessageResult, _ int) rest.PollMessage {
			msg := rest.PollMessage{
				MessageID: m.MessageID,
				Outcome:   string(m.Outcome),
				Status:    string(m.Status),
				OfferID:   uuidString(m.OfferID),
			}
			if m.Err != nil {
				msg.Error = m.Err.Error()
			}
			return msg
		}),
	}
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}

	return lo.ToPtr(id.String())
}

func timeString(t *time.Time) *string {
	if t == nil {
		return nil
	}

	return lo.ToPtr(t.UTC().Format(time.RFC3339))
}
