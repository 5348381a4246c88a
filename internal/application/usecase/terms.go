package usecase

import (
	"fmt"

	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/application/dto"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/model"
	"github.com/riderbookmybike-blip/bookmy.bike-sub007/internal/domain/valueobject"
)

// toSchemeTerms validates the enum fields of a terms payload and maps it to
// the domain bundle. An omitted payout type defaults to PERCENTAGE.
func toSchemeTerms(p dto.SchemeTermsPayload) (model.SchemeTerms, error) {
	interestType, err := valueobject.NewInterestType(p.InterestType)
	if err != nil {
		return model.SchemeTerms{}, fmt.Errorf("parse interest type: %w", err)
	}

	payoutType := valueobject.PayoutPercentage
	if p.PayoutType != "" {
		payoutType, err = valueobject.NewPayoutType(p.PayoutType)
		if err != nil {
			return model.SchemeTerms{}, fmt.Errorf("parse payout type: %w", err)
		}
	}

	return model.SchemeTerms{
		Name:          p.Name,
		PartnerName:   p.PartnerName,
		InterestRate:  p.InterestRate,
		InterestType:  interestType,
		MinTenure:     p.MinTenure,
		MaxTenure:     p.MaxTenure,
		MinLoanAmount: p.MinLoanAmount,
		MaxLoanAmount: p.MaxLoanAmount,
		MaxLTV:        p.MaxLTV,
		Payout:        p.Payout,
		PayoutType:    payoutType,
	}, nil
}
