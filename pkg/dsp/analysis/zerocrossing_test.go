package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ZeroCrossingSuite runs the locator against a buffer of mostly +1 with a
// handful of exact zeros and -1 dips.
type ZeroCrossingSuite struct {
	suite.Suite
	buf []float32
}

func (s *ZeroCrossingSuite) SetupTest() {
	s.buf = make([]float32, 1000)
	for i := range s.buf {
		s.buf[i] = 1
	}
	for _, i := range []int{87, 173, 211, 304, 468, 823, 900, 902} {
		s.buf[i] = 0
	}
	for _, i := range []int{143, 257, 366, 411, 640, 781, 901, 951} {
		s.buf[i] = -1
	}
}

// TestNearest checks the nearest crossing for queries spread over the buffer.
func (s *ZeroCrossingSuite) TestNearest() {
	tests := []struct {
		query int
		want  int
	}{
		{100, 87},
		{200, 211},
		{250, 256},
		{300, 304},
		{400, 410},
		{500, 468},
		{600, 639},
		{700, 640},
		{800, 781},
		{900, 900},
	}

	for _, tt := range tests {
		got, err := NearestZeroCrossing(s.buf, tt.query, SlopeAny)
		require.NoError(s.T(), err)
		s.Equal(tt.want, got, "query %d", tt.query)
	}
}

// TestTieBreak verifies that equally near crossings resolve to the lower index.
func (s *ZeroCrossingSuite) TestTieBreak() {
	got, err := NearestZeroCrossing(s.buf, 901, SlopeAny)
	require.NoError(s.T(), err)
	s.Equal(900, got)
}

// TestExactZeroCollapses verifies an exact zero yields one index, not two.
func (s *ZeroCrossingSuite) TestExactZeroCollapses() {
	crossings, err := ZeroCrossings(s.buf, SlopeAny)
	require.NoError(s.T(), err)

	s.Contains(crossings, 87)
	s.NotContains(crossings, 86)
	s.Contains(crossings, 211)
	s.NotContains(crossings, 210)

	// a -1 dip keeps both straddling pairs
	s.Contains(crossings, 256)
	s.Contains(crossings, 257)

	// 0, -1, 0 around 901 collapses to the two zeros
	s.Contains(crossings, 900)
	s.Contains(crossings, 902)
	s.NotContains(crossings, 899)
	s.NotContains(crossings, 901)
}

// TestSlopeFilter checks ascending and descending filters.
func (s *ZeroCrossingSuite) TestSlopeFilter() {
	up, err := NearestZeroCrossing(s.buf, 250, SlopeAscending)
	require.NoError(s.T(), err)
	s.Equal(257, up)

	down, err := NearestZeroCrossing(s.buf, 250, SlopeDescending)
	require.NoError(s.T(), err)
	s.Equal(256, down)

	up, err = NearestZeroCrossing(s.buf, 901, SlopeAscending)
	require.NoError(s.T(), err)
	s.Equal(902, up)

	down, err = NearestZeroCrossing(s.buf, 901, SlopeDescending)
	require.NoError(s.T(), err)
	s.Equal(900, down)

	// a zero touched from above only counts where the signal rises again
	down, err = NearestZeroCrossing(s.buf, 90, SlopeDescending)
	require.NoError(s.T(), err)
	s.Equal(142, down)
}

// TestInvalidSlope verifies the invalid-argument failure.
func (s *ZeroCrossingSuite) TestInvalidSlope() {
	_, err := NearestZeroCrossing(s.buf, 500, Slope(7))
	s.ErrorIs(err, ErrInvalidSlope)
	s.ErrorIs(err, ErrInvalidArgument)

	crossings, err := ZeroCrossings(s.buf, Slope(-1))
	s.ErrorIs(err, ErrInvalidSlope)
	s.Nil(crossings)
}

func TestZeroCrossingSuite(t *testing.T) {
	suite.Run(t, new(ZeroCrossingSuite))
}

func TestZeroCrossingsSine(t *testing.T) {
	// 100 samples per period, sample 0 is an exact zero
	buf := make([]float32, 400)
	for i := range buf {
		buf[i] = float32(math.Sin(2 * math.Pi * float64(i) / 100))
	}
	buf[0] = 0

	up, err := ZeroCrossings(buf, SlopeAscending)
	require.NoError(t, err)
	require.Len(t, up, 4)
	assert.Equal(t, 0, up[0])
	for k, i := range up[1:] {
		assert.InDelta(t, 100*(k+1), i, 1, "ascending crossing %d", k+1)
	}

	down, err := ZeroCrossings(buf, SlopeDescending)
	require.NoError(t, err)
	assert.Len(t, down, 4)

	all, err := ZeroCrossings(buf, SlopeAny)
	require.NoError(t, err)
	assert.Len(t, all, len(up)+len(down))
}

func TestNoZeroCrossing(t *testing.T) {
	tests := []struct {
		name string
		buf  []float32
	}{
		{"empty", nil},
		{"single", []float32{0}},
		{"constant", []float32{0.5, 0.5, 0.5}},
		{"all zero", []float32{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NearestZeroCrossing(tt.buf, 0, SlopeAny)
			assert.ErrorIs(t, err, ErrNoZeroCrossing)
		})
	}
}

func TestZeroCrossingsSkipNaN(t *testing.T) {
	nan := float32(math.NaN())
	crossings, err := ZeroCrossings([]float32{1, nan, -1, 1}, SlopeAny)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, crossings)
}

func TestQueryOutsideBuffer(t *testing.T) {
	buf := []float32{-1, 1, 1, 1, -1}
	got, err := NearestZeroCrossing(buf, -50, SlopeAny)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = NearestZeroCrossing(buf, 50, SlopeAny)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestParseSlope(t *testing.T) {
	tests := map[string]Slope{
		"":           SlopeAny,
		"any":        SlopeAny,
		"ascending":  SlopeAscending,
		"up":         SlopeAscending,
		"descending": SlopeDescending,
		"down":       SlopeDescending,
	}
	for name, want := range tests {
		got, err := ParseSlope(name)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseSlope("sideways")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, "Slope(9)", Slope(9).String())
}
