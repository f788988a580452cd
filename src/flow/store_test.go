package flow

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"hbs/src/config"
	"hbs/src/pricing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisStoreDraftRoundTrip(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := NewRedisStore(rdb)
	ctx := context.Background()

	draft := sampleDraft()
	data, err := json.Marshal(draft)
	assert.Nil(t, err)

	mock.ExpectSet("draft:sess-1", data, config.DRAFT_TTL_HOURS*time.Hour).SetVal("OK")
	err = store.SetDraft(ctx, "sess-1", draft)
	assert.Nil(t, err)

	mock.ExpectGet("draft:sess-1").SetVal(string(data))
	got, err := store.GetDraft(ctx, "sess-1")
	assert.Nil(t, err)
	assert.Equal(t, draft, got)

	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestRedisStoreMissingDraft(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := NewRedisStore(rdb)

	mock.ExpectGet("draft:missing").RedisNil()
	got, err := store.GetDraft(context.Background(), "missing")
	assert.Nil(t, err)
	assert.Nil(t, got)
}

func TestRedisStoreSummary(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	store := NewRedisStore(rdb)
	ctx := context.Background()

	summary := &pricing.Summary{Nights: 3, RoomsTotal: 150, ExtrasTotal: 40, Subtotal: 190, Tax: 24.70, Total: 214.70}
	data, err := json.Marshal(summary)
	assert.Nil(t, err)

	mock.ExpectSet("draft:sess-1:summary", data, config.DRAFT_TTL_HOURS*time.Hour).SetVal("OK")
	assert.Nil(t, store.SetSummary(ctx, "sess-1", summary))

	mock.ExpectGet("draft:sess-1:summary").SetVal(string(data))
	got, err := store.GetSummary(ctx, "sess-1")
	assert.Nil(t, err)
	assert.Equal(t, summary, got)

	mock.ExpectDel("draft:sess-1", "draft:sess-1:summary").SetVal(2)
	assert.Nil(t, store.DeleteDraft(ctx, "sess-1"))

	assert.Nil(t, mock.ExpectationsWereMet())
}
