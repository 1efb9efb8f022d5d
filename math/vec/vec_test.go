package vec

import (
	"testing"
)

var (
	NULL = Vec3{}
)

func TestBasics(t *testing.T) {
	v := Vec3{1, 2, 3}
	if v.X != 1 || v.Y != 2 || v.Z != 3 {
		t.Errorf("Vector construction is not obvious")
	}
}

func TestLength(t *testing.T) {
	if NULL.Length() != 0 {
		t.Errorf("Null vector has not 0 length")
	}
	v := Vec3{2, 2, 1}
	if v.Length() != 3 {
		t.Errorf("%v Length is not 3", v)
	}
	v = Vec3{2, 1, 2}
	if v.Length() != 3 {
		t.Errorf("%v Length is not 3", v)
	}
	v = Vec3{1, 2, 2}
	if v.Length() != 3 {
		t.Errorf("%v Length is not 3", v)
	}
}

func TestAdd(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := Add(NULL, v)
	if v != got {
		t.Errorf("Adding a null vector changed the vector")
	}
	got = Add(v, NULL)
	if v != got {
		t.Errorf("Adding a null vector changed the vector")
	}
	got = Add(v, v)
	want := Vec3{2, 4, 6}
	if got != want {
		t.Errorf("Add(%v,%v) = %v want %v", v, v, got, want)
	}
}

func TestSub(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := Sub(v, NULL)
	if v != got {
		t.Errorf("Substracting a null vector changed the vector")
	}
	got = Sub(v, v)
	if got != NULL {
		t.Errorf("Sub(%v,%v) = %v want %v", v, v, got, NULL)
	}
	v2 := Vec3{9, 7, 5}
	got = Sub(v2, v)
	want := Vec3{8, 5, 2}
	if got != want {
		t.Errorf("Sub(%v,%v) = %v want %v", v2, v, got, want)
	}
}

func TestCross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	z := Vec3{0, 0, 1}
	got := Cross(x, y)
	if got != z {
		t.Errorf("Cross(%v,%v) = %v want %v", x, y, got, z)
	}
	got = Cross(y, x)
	if got != z.Scale(-1) {
		t.Errorf("Cross(%v,%v) = %v want %v", y, x, got, z.Scale(-1))
	}
	got = Cross(x, x)
	if got != NULL {
		t.Errorf("Cross of a vector with itself is not null, got %v", got)
	}
}

func TestDot(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}
	got := Dot(a, b)
	if got != 12 {
		t.Errorf("Dot(%v,%v) = %v want 12", a, b, got)
	}
	if Dot(a, NULL) != 0 {
		t.Errorf("Dot with a null vector is not 0")
	}
}

func TestNormalize(t *testing.T) {
	v := Vec3{3, 0, 4}
	got := v.Normalize()
	want := Vec3{0.6, 0, 0.8}
	if !ApproxEqual(got, want, 1e-12) {
		t.Errorf("Normalize(%v) = %v want %v", v, got, want)
	}
	got = NULL.Normalize()
	if got != NULL {
		t.Errorf("Normalizing the null vector should keep it null, got %v", got)
	}
}

func TestParallel(t *testing.T) {
	a := Vec3{1, 2, 3}
	if !Parallel(a, a.Scale(-2.5), 1e-9) {
		t.Errorf("%v is not parallel to its own negative multiple", a)
	}
	b := Vec3{1, 2, 4}
	if Parallel(a, b, 1e-9) {
		t.Errorf("%v and %v are considered parallel", a, b)
	}
}

func TestMinMax(t *testing.T) {
	a := Vec3{1, 5, 3}
	b := Vec3{2, 4, -3}
	min, max := MinMax(a, b)
	wantMin := Vec3{1, 4, -3}
	wantMax := Vec3{2, 5, 3}
	if min != wantMin || max != wantMax {
		t.Errorf("MinMax(%v,%v) = %v,%v want %v,%v", a, b, min, max, wantMin, wantMax)
	}
}
