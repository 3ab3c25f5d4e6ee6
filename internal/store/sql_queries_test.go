// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-smart-cards/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildCommitGenerationCallQuery(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	query, args, err := buildCommitGenerationCallQuery(testUserID, now, 24*time.Hour, 100)
	require.NoError(t, err)

	require.Equal(t, []any{now, now, now.Add(24 * time.Hour), testUserID, now, 100}, args)

	assert.True(t, strings.HasPrefix(query, "UPDATE users SET api_call_count = CASE"))
	assert.Contains(t, query, "THEN 1 ELSE api_call_count + 1 END")
	assert.Contains(t, query, "$3::timestamptz ELSE api_call_reset_at END")
	assert.Contains(t, query, "WHERE id = $4")
	assert.Contains(t, query, "api_call_reset_at IS NULL OR api_call_reset_at <= $5")
	assert.Contains(t, query, "api_call_count < $6")
	assert.True(t, strings.HasSuffix(query, "RETURNING api_call_count, api_call_reset_at"))
	assert.NotContains(t, query, "?")
}

func Test_buildCreateCardsQuery(t *testing.T) {
	drafts := []models.CardDraft{{Front: "a", Back: "b"}, {Front: "c", Back: "d"}, {Front: "e", Back: "f"}}
	ids := []string{"id1", "id2", "id3"}

	query, args, err := buildCreateCardsQuery(testDeckID, ids, drafts)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO cards (id,deck_id,front,back) VALUES ($1,$2,$3,$4),($5,$6,$7,$8),($9,$10,$11,$12)")
	assert.Contains(t, query, "RETURNING "+cardColumns)
	require.Len(t, args, 12)
	assert.Equal(t, []any{"id2", testDeckID, "c", "d"}, args[4:8])
}

func Test_buildCreateCardsQuery_Mismatch(t *testing.T) {
	tests := []struct {
		name   string
		ids    []string
		drafts []models.CardDraft
	}{
		{name: "no drafts", ids: nil, drafts: nil},
		{name: "fewer ids", ids: []string{"id1"}, drafts: []models.CardDraft{{}, {}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := buildCreateCardsQuery(testDeckID, tt.ids, tt.drafts)
			assert.ErrorIs(t, err, ErrBuildingSQLQuery)
		})
	}
}

func Test_buildUpdateCardQuery(t *testing.T) {
	front, back := "front", "back"

	tests := []struct {
		name      string
		update    models.CardUpdate
		deckID    string
		returning bool
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "front only",
			update:    models.CardUpdate{ID: testCardID, Front: &front},
			wantQuery: "UPDATE cards SET updated_at = NOW(), front = $1 WHERE id = $2",
			wantArgs:  []any{"front", testCardID},
		},
		{
			name:      "both fields scoped to deck",
			update:    models.CardUpdate{ID: testCardID, Front: &front, Back: &back},
			deckID:    testDeckID,
			wantQuery: "UPDATE cards SET updated_at = NOW(), front = $1, back = $2 WHERE id = $3 AND deck_id = $4",
			wantArgs:  []any{"front", "back", testCardID, testDeckID},
		},
		{
			name:      "returning row",
			update:    models.CardUpdate{ID: testCardID, Back: &back},
			returning: true,
			wantQuery: "UPDATE cards SET updated_at = NOW(), back = $1 WHERE id = $2 RETURNING " + cardColumns,
			wantArgs:  []any{"back", testCardID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateCardQuery(tt.update, tt.deckID, tt.returning)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildUpdateCardQuery_Empty(t *testing.T) {
	_, _, err := buildUpdateCardQuery(models.CardUpdate{ID: testCardID}, "", false)
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
}

func Test_buildDeleteCardsInDeckQuery(t *testing.T) {
	query, args, ok, err := buildDeleteCardsInDeckQuery(testDeckID, []string{testCardID, "nope", "", testCardID2})
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "DELETE FROM cards WHERE deck_id = $1 AND id IN ($2,$3)", query)
	assert.Equal(t, []any{testDeckID, testCardID, testCardID2}, args)
}

func Test_buildDeleteCardsInDeckQuery_NothingValid(t *testing.T) {
	query, args, ok, err := buildDeleteCardsInDeckQuery(testDeckID, []string{"nope"})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, query)
	assert.Nil(t, args)
}
