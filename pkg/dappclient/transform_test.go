package dappclient_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HungEzz/surfsui/internal/domain"
	"github.com/HungEzz/surfsui/pkg/dappclient"
)

func TestTransformDApp(t *testing.T) {
	row := domain.DAppRanking{
		Rank:      3,
		PackageID: "0xabc",
		DAppName:  "Cetus AMM",
		DAU1H:     500,
		DAppType:  "DEX",
	}

	dapp := dappclient.TransformDApp(row, 0)

	assert.Equal(t, 3, dapp.Rank)
	assert.Equal(t, "Cetus AMM", dapp.Name)
	assert.Equal(t, int64(500), dapp.Account)
	assert.Equal(t, domain.CategoryDEX, dapp.Type)
}

func TestTransformDAppRankFallback(t *testing.T) {
	row := domain.DAppRanking{DAppName: "NoRank", DAppType: "AI"}

	assert.Equal(t, 1, dappclient.TransformDApp(row, 0).Rank)
	assert.Equal(t, 8, dappclient.TransformDApp(row, 7).Rank)
}

func TestTransformDAppUnknownTypeFallsBackToDeFi(t *testing.T) {
	for _, raw := range []string{"Unknown", "", "Something Else"} {
		row := domain.DAppRanking{Rank: 1, DAppName: "X", DAppType: raw}
		assert.Equal(t, domain.CategoryDeFi, dappclient.TransformDApp(row, 0).Type, "raw type %q", raw)
	}
}

func TestTransformDAppsPreservesOrder(t *testing.T) {
	rows := []domain.DAppRanking{
		{Rank: 1, DAppName: "A", DAppType: "DEX"},
		{DAppName: "B", DAppType: "Gaming"},
		{Rank: 3, DAppName: "C", DAppType: "Unknown"},
	}

	dapps := dappclient.TransformDApps(rows)

	assert.Len(t, dapps, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{dapps[0].Rank, dapps[1].Rank, dapps[2].Rank})
	assert.Equal(t, domain.CategoryGaming, dapps[1].Type)
	assert.Equal(t, domain.CategoryDeFi, dapps[2].Type)
}
