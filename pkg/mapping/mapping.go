package mapping

import (
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/skillink/skillink/pkg/api"
	"github.com/skillink/skillink/pkg/booking"
	"github.com/skillink/skillink/pkg/directory"
	"github.com/skillink/skillink/pkg/models"
)

// ToApiBooking converts a domain Booking model to an API Booking model.
func ToApiBooking(b *models.Booking) api.Booking {
	return api.Booking{
		Id:         b.Id,
		ProviderId: b.ProviderId,
		SeekerId:   b.SeekerId,
		SkillId:    b.SkillId,
		Date:       openapi_types.Date{Time: b.Date},
		Time:       b.TimeOfDay,
		Duration:   b.Duration,
		Message:    b.Message,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

// ToApiBookingDetail converts an annotated booking, carrying the resolved
// participant names.
func ToApiBookingDetail(d *booking.Detail) api.Booking {
	out := ToApiBooking(&d.Booking)
	out.ProviderName = d.ProviderName
	out.SeekerName = d.SeekerName
	return out
}

// ToDomainCreateRequest converts an API NewBooking to a ledger create request
// on behalf of the authenticated seeker.
func ToDomainCreateRequest(nb *api.NewBooking, seekerID string) booking.CreateRequest {
	date := ""
	if !nb.Date.IsZero() {
		date = nb.Date.Time.Format("2006-01-02")
	}
	return booking.CreateRequest{
		ProviderId: nb.ProviderId,
		SeekerId:   seekerID,
		SkillId:    nb.SkillId,
		Date:       date,
		Time:       nb.Time,
		Duration:   nb.Duration,
		Message:    nb.Message,
	}
}

// ToApiCreditTransaction converts a domain CreditTransaction model.
func ToApiCreditTransaction(tx *models.CreditTransaction) api.CreditTransaction {
	var relatedID *string
	if tx.RelatedId != "" {
		v := tx.RelatedId
		relatedID = &v
	}
	return api.CreditTransaction{
		Id:            tx.Id,
		UserId:        tx.UserId,
		Amount:        tx.Amount,
		Reason:        tx.Reason,
		RelatedId:     relatedID,
		BalanceBefore: tx.BalanceBefore,
		BalanceAfter:  tx.BalanceAfter,
		CreatedAt:     tx.CreatedAt,
	}
}

// ToApiSkill converts a domain Skill model.
func ToApiSkill(sk *models.Skill) api.Skill {
	return api.Skill{
		Id:          sk.Id,
		UserId:      sk.UserId,
		SkillName:   sk.SkillName,
		Type:        string(sk.Type),
		Proficiency: sk.Proficiency,
		CreatedAt:   sk.CreatedAt,
	}
}

// ToApiUserProfile converts a domain User to its profile view.
func ToApiUserProfile(u *models.User) api.UserProfile {
	return api.UserProfile{
		Id:       u.Id,
		Email:    u.Email,
		Name:     u.Name,
		Bio:      u.Bio,
		Location: u.Location,
		Phone:    u.Phone,
	}
}

// ToApiSkillSummaries converts directory skill summaries.
func ToApiSkillSummaries(in []directory.SkillSummary) []api.SkillSummary {
	out := make([]api.SkillSummary, len(in))
	for i, s := range in {
		out[i] = api.SkillSummary{
			Name:        s.Name,
			Type:        string(s.Type),
			Proficiency: s.Proficiency,
		}
	}
	return out
}

// ToApiSearchResult converts a directory search match.
func ToApiSearchResult(r *directory.SearchResult) api.SearchResult {
	return api.SearchResult{
		Id:       r.Id,
		Name:     r.Name,
		Bio:      r.Bio,
		Location: r.Location,
		Skills:   ToApiSkillSummaries(r.Skills),
	}
}

// ToApiNearbyUser converts a directory proximity match.
func ToApiNearbyUser(n *directory.NearbyUser) api.NearbyUser {
	return api.NearbyUser{
		Id:        n.Id,
		Name:      n.Name,
		Bio:       n.Bio,
		Location:  n.Location,
		Latitude:  n.Latitude,
		Longitude: n.Longitude,
		Distance:  n.Distance,
		Skills:    ToApiSkillSummaries(n.Skills),
	}
}

// ToApiReputation converts a derived reputation.
func ToApiReputation(r *directory.Reputation) api.Reputation {
	return api.Reputation{
		UserId:          r.UserId,
		UserName:        r.UserName,
		ReputationScore: r.Score,
		Level:           r.Level,
		Stats: api.ReputationStats{
			AvgRating:         r.AvgRating,
			TotalReviews:      r.TotalReviews,
			CompletedSessions: r.CompletedSessions,
			TotalSkills:       r.TotalSkills,
		},
	}
}

// ToApiReview converts a domain Review model.
func ToApiReview(r *models.Review, reviewerName string) api.Review {
	return api.Review{
		Id:           r.Id,
		ReviewerId:   r.ReviewerId,
		RevieweeId:   r.RevieweeId,
		BookingId:    r.BookingId,
		SkillId:      r.SkillId,
		Rating:       r.Rating,
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt,
		ReviewerName: reviewerName,
	}
}

// ToApiProject converts a domain Project model.
func ToApiProject(p *models.Project, creatorName string) api.Project {
	return api.Project{
		Id:          p.Id,
		Title:       p.Title,
		Description: p.Description,
		Skills:      p.Skills,
		Location:    p.Location,
		CreatorId:   p.CreatorId,
		Members:     p.Members,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		CreatorName: creatorName,
	}
}
