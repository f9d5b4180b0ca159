package domain_test

import (
	"testing"

	"github.com/fust64/fust_beheer_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestMutation_Totals(t *testing.T) {
	m := domain.Mutation{LoadedCage: 10, LoadedPlate: 5, UnloadedCage: 2, UnloadedPlate: 1}

	assert.Equal(t, 15, m.LoadedTotal())
	assert.Equal(t, 3, m.UnloadedTotal())
	assert.Equal(t, -8, m.CageDelta())
	assert.Equal(t, -4, m.PlateDelta())
}

func TestMeaningFor(t *testing.T) {
	tests := []struct {
		name    string
		kind    domain.PartnerKind
		balance int
		want    domain.BalanceMeaning
	}{
		{
			name:    "customer positive means business is owed",
			kind:    domain.KindCustomer,
			balance: 8,
			want:    domain.MeaningOwedToBusiness,
		},
		{
			name:    "customer negative means business owes",
			kind:    domain.KindCustomer,
			balance: -8,
			want:    domain.MeaningOwedByBusiness,
		},
		{
			name:    "supplier positive means business owes",
			kind:    domain.KindSupplier,
			balance: 8,
			want:    domain.MeaningOwedByBusiness,
		},
		{
			name:    "supplier negative means business is owed",
			kind:    domain.KindSupplier,
			balance: -8,
			want:    domain.MeaningOwedToBusiness,
		},
		{
			name:    "zero is settled for customers",
			kind:    domain.KindCustomer,
			balance: 0,
			want:    domain.MeaningSettled,
		},
		{
			name:    "zero is settled for suppliers",
			kind:    domain.KindSupplier,
			balance: 0,
			want:    domain.MeaningSettled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.MeaningFor(tt.kind, tt.balance))
		})
	}
}

func TestPartnerKind_IsValid(t *testing.T) {
	assert.True(t, domain.KindCustomer.IsValid())
	assert.True(t, domain.KindSupplier.IsValid())
	assert.False(t, domain.PartnerKind("vendor").IsValid())
	assert.False(t, domain.PartnerKind("").IsValid())
}
