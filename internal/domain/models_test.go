package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeRangeLowerBound(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	assert.Equal(t, int64(0), RangeAll.LowerBound(now), "all imposes no bound")
	assert.Equal(t, now.Unix()-3600, RangeHour.LowerBound(now))
	assert.Equal(t, now.Unix()-86400, RangeDay.LowerBound(now))
	assert.Equal(t, now.Unix()-604800, RangeWeek.LowerBound(now))
	assert.Equal(t, now.Unix()-2592000, RangeMonth.LowerBound(now))
}

func TestFilterSourceRestriction(t *testing.T) {
	assert.Equal(t, SourceScreenshot, FilterImages.SourceRestriction())
	assert.Equal(t, SourceClipboard, FilterClipboard.SourceRestriction())
	assert.Equal(t, Source(""), FilterAll.SourceRestriction(), "all imposes no source restriction")
	assert.Equal(t, Source(""), FilterText.SourceRestriction(), "text imposes no source restriction")
}

func TestDefaultQuery(t *testing.T) {
	q := DefaultQuery()
	assert.Empty(t, q.Text)
	assert.Equal(t, FilterAll, q.Filter)
	assert.Equal(t, RangeAll, q.Range)
}
