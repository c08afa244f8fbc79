package bitset

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/sirkon/deepequal"

	"github.com/sirkon/gcontainers/internal/logging/mocks"
	"github.com/sirkon/gcontainers/internal/testlog"
)

func TestBitSetGetSet(t *testing.T) {
	var s BitSet[uint]
	for _, v := range []uint{2, 3, 9, 64, 130} {
		if testlog.Check(t, s.Set(v, true)) {
			return
		}
	}

	for _, v := range []uint{0, 1, 2, 3, 5, 7, 8, 9, 15, 45, 64, 120, 130, 1000} {
		want := v == 2 || v == 3 || v == 9 || v == 64 || v == 130
		if got := s.Get(v); got != want {
			t.Errorf("get(%d): expected %v, got %v", v, want, got)
		}
	}
	if s.Len() != 5 {
		t.Errorf("expected 5 elements, got %d", s.Len())
	}

	t.Run("remove", func(t *testing.T) {
		if testlog.Check(t, s.Set(64, false)) {
			return
		}
		if s.Get(64) {
			t.Error("removed element is still in the set")
		}
	})

	t.Run("remove beyond storage does not grow", func(t *testing.T) {
		size := len(s.words)
		if testlog.Check(t, s.Set(100000, false)) {
			return
		}
		if len(s.words) != size {
			t.Errorf("storage grew from %d to %d words", size, len(s.words))
		}
	})

	t.Run("flip", func(t *testing.T) {
		if testlog.Check(t, s.Flip(2)) {
			return
		}
		if testlog.Check(t, s.Flip(4)) {
			return
		}
		deepequal.SideBySide(t, "elements", []uint{3, 4, 9, 130}, s.Elements())
	})

	t.Run("clear", func(t *testing.T) {
		s.Clear()
		if !s.Empty() || s.Len() != 0 {
			t.Errorf("set must be empty after clear, got %s", s.String())
		}
	})
}

func TestBitSetLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewLoggerMock(ctrl)
	logger.EXPECT().BitSetGrowthRejected(uint64(300), uint64(200), gomock.Any())
	logger.EXPECT().BitSetGrowthRejected(uint64(250), uint64(200), gomock.Any())

	s, err := New[uint16](BitLimit(200), WithLogger(logger))
	if testlog.Check(t, err) {
		return
	}
	if testlog.Check(t, s.Set(199, true)) {
		return
	}

	if err := s.Set(300, true); err != nil {
		if !IsBitLimitExceeded(err) {
			testlog.Error(t, err)
			return
		}
		testlog.Log(t, err)
	} else {
		t.Error("adding element over the limit must fail")
		return
	}

	if err := s.Set(250, true); !IsBitLimitExceeded(err) {
		t.Errorf("element over the limit must be rejected even within storage, got %v", err)
	}
	if testlog.Check(t, s.Set(250, false)) {
		return
	}

	deepequal.SideBySide(t, "elements", []uint16{199}, s.Elements())

	if _, err := New[uint16](BitLimit(0)); err == nil {
		t.Error("zero bit limit must be rejected")
	}
}

func TestBitSetOperations(t *testing.T) {
	a := mustParse(t, "1 5 9 200")
	b := mustParse(t, "2 3 9")

	tests := []struct {
		name string
		got  *BitSet[uint32]
		want string
	}{
		{name: "union", got: Union(a, b), want: "{1, 2, 3, 5, 9, 200}"},
		{name: "intersection", got: Intersection(a, b), want: "{9}"},
		{name: "symmetric difference", got: SymmetricDifference(a, b), want: "{1, 2, 3, 5, 200}"},
		{name: "union with empty", got: Union(a, &BitSet[uint32]{}), want: "{1, 5, 9, 200}"},
		{name: "intersection with empty", got: Intersection(&BitSet[uint32]{}, b), want: "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got.String()); diff != "" {
				t.Errorf("unexpected result (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBitSetEqual(t *testing.T) {
	a := mustParse(t, "1 5 100")
	b := mustParse(t, "1 5 100")
	if !Equal(a, b) {
		t.Error("sets with same elements must be equal")
	}

	if testlog.Check(t, b.Set(1000, true)) {
		return
	}
	if Equal(a, b) || Equal(b, a) {
		t.Error("sets with different elements must not be equal")
	}

	if testlog.Check(t, b.Set(1000, false)) {
		return
	}
	if !Equal(a, b) || !Equal(b, a) {
		t.Error("trailing zero words must not affect equality")
	}
}

func TestBitSetCloneSwap(t *testing.T) {
	a := mustParse(t, "1 2")
	b := mustParse(t, "70")

	c := a.Clone()
	if testlog.Check(t, c.Set(3, true)) {
		return
	}
	if diff := cmp.Diff("{1, 2}", a.String()); diff != "" {
		t.Errorf("clone mutation changed the source (-want +got):\n%s", diff)
	}

	a.Swap(b)
	if diff := cmp.Diff([]string{"{70}", "{1, 2}"}, []string{a.String(), b.String()}); diff != "" {
		t.Errorf("unexpected swap result (-want +got):\n%s", diff)
	}
}

func TestParse(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		s := mustParse(t, "  9 1\n5\t1 ")
		if diff := cmp.Diff("{1, 5, 9}", s.String()); diff != "" {
			t.Errorf("unexpected set (-want +got):\n%s", diff)
		}
	})

	t.Run("empty", func(t *testing.T) {
		s := mustParse(t, "")
		if !s.Empty() {
			t.Errorf("expected empty set, got %s", s)
		}
	})

	for _, text := range []string{"1 x 2", "-1", "4294967296"} {
		t.Run("invalid "+text, func(t *testing.T) {
			if _, err := Parse[uint32](text); err != nil {
				testlog.Log(t, err)
				return
			}

			t.Errorf("%q must not be parsed", text)
		})
	}
}

func mustParse(t *testing.T, text string) *BitSet[uint32] {
	t.Helper()

	s, err := Parse[uint32](text)
	if err != nil {
		testlog.Error(t, err)
		t.FailNow()
	}

	return s
}
