package ir

import "testing"

func TestCompare(t *testing.T) {
	type cmpTest struct {
		a, b *Node
		want int
	}
	tts := []cmpTest{
		{Null(), Null(), 0},
		{Null(), FromBool(false), -1},
		{FromBool(false), FromBool(true), -1},
		{FromInt(1), FromInt(2), -1},
		{FromInt(3), FromFloat(3), 0},
		{FromFloat(2.5), FromInt(2), 1},
		{FromString("a"), FromString("b"), -1},
		{FromString("a"), FromInt(100), 1},
		{
			FromSlice([]*Node{FromInt(1)}),
			FromSlice([]*Node{FromInt(1), FromInt(2)}),
			-1,
		},
		{
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			0,
		},
		{
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "b", Val: FromInt(1)}}),
			-1,
		},
	}
	for i, tt := range tts {
		if got := Compare(tt.a, tt.b); got != tt.want {
			t.Errorf("case %d: Compare = %d, want %d", i, got, tt.want)
		}
	}
}

func TestGetLastWins(t *testing.T) {
	y := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromInt(1)},
		{Key: "a", Val: FromInt(2)},
	})
	v := Get(y, "a")
	if v == nil || v.Int64 == nil || *v.Int64 != 2 {
		t.Errorf("Get returned %v, want the last entry", v)
	}
}

func TestClone(t *testing.T) {
	y := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromSlice([]*Node{FromInt(1), Null()})},
		{Key: "b", Val: FromString("x")},
	})
	c := y.Clone()
	if !Equal(y, c) {
		t.Fatal("clone not equal")
	}
	c.Values[1].String = "changed"
	if Equal(y, c) {
		t.Fatal("clone shares state")
	}
}
