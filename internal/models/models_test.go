package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_JSON(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`100.5`), &m))
	assert.Equal(t, Money(10050), m)

	require.NoError(t, json.Unmarshal([]byte(`"19.99"`), &m))
	assert.Equal(t, Money(1999), m)

	b, err := json.Marshal(NewMoney(100))
	require.NoError(t, err)
	assert.Equal(t, "100.00", string(b))

	b, err = json.Marshal(Money(-5))
	require.NoError(t, err)
	assert.Equal(t, "-0.05", string(b))

	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &m))

	// Amounts whose cents overflow int64 are rejected, not wrapped.
	m = Money(42)
	assert.Error(t, json.Unmarshal([]byte(`1e17`), &m))
	assert.Error(t, json.Unmarshal([]byte(`"-92233720368547760"`), &m))
	assert.Equal(t, Money(42), m)

	require.NoError(t, json.Unmarshal([]byte(`90000000000000000`), &m))
	assert.Equal(t, Money(9000000000000000000), m)
}

func TestInvitation_State(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	inv := &Invitation{ExpiresAt: now.Add(time.Hour)}
	assert.Equal(t, InvitationValid, inv.State(now))

	inv.ExpiresAt = now.Add(-time.Second)
	assert.Equal(t, InvitationExpired, inv.State(now))

	used := now.Add(-time.Minute)
	inv.ExpiresAt = now.Add(time.Hour)
	inv.UsedAt = &used
	assert.Equal(t, InvitationUsed, inv.State(now))
}

func TestSpiritualStatus_Rank(t *testing.T) {
	assert.Equal(t, 0, StatusVisitor.Rank())
	assert.Equal(t, 4, StatusDiscipler.Rank())
	assert.Equal(t, -1, SpiritualStatus("unknown").Rank())
}

func TestAnnouncement_Visible(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.False(t, (&Announcement{}).Visible(now))
	assert.True(t, (&Announcement{PublishedAt: &past}).Visible(now))
	assert.False(t, (&Announcement{PublishedAt: &past, ExpiresAt: &past}).Visible(now))
	assert.False(t, (&Announcement{PublishedAt: &future}).Visible(now))
}

func TestFinancialTransaction_SignedAmount(t *testing.T) {
	income := &FinancialTransaction{Type: TransactionIncome, Amount: 500}
	expense := &FinancialTransaction{Type: TransactionExpense, Amount: 200}
	assert.Equal(t, Money(500), income.SignedAmount())
	assert.Equal(t, Money(-200), expense.SignedAmount())
}
