/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suparena/enumb/errors"
)

type label string

func (l label) String() string { return string(l) }

type opaque struct{ id int }

func newInts(t *testing.T) *Registry[int] {
	t.Helper()
	r := New[int]("TestEnumInts")
	require.NoError(t, r.Register("Nones", 1))
	require.NoError(t, r.Register("Somes", 2))
	require.NoError(t, r.Register("Anys", 3))
	require.NoError(t, r.Register("Each", 4))
	return r
}

func TestRegister(t *testing.T) {
	t.Run("AccessorReturnsRegisteredValue", func(t *testing.T) {
		r := New[string]("TestEnumStringKeys")
		require.NoError(t, r.Register("None", "123"))
		require.NoError(t, r.Register("Some", "456"))

		get, err := r.Accessor("None")
		require.NoError(t, err)
		assert.Equal(t, "123", get())
		assert.Equal(t, "456", r.MustGet("Some"))
	})

	t.Run("ReRegistrationUpdatesExistingAccessor", func(t *testing.T) {
		r := New[string]("TestEnumSyms")
		require.NoError(t, r.Register("Nones", "123"))
		get, err := r.Accessor("Nones")
		require.NoError(t, err)

		require.NoError(t, r.Register("Nones", "789"))
		assert.Equal(t, "789", get())
		assert.Equal(t, 1, r.Len())
	})

	t.Run("ReRegistrationKeepsPosition", func(t *testing.T) {
		r := newInts(t)
		require.NoError(t, r.Register("Somes", 20))
		if diff := cmp.Diff([]int{1, 20, 3, 4}, r.Values()); diff != "" {
			t.Fatalf("values mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("EmptyNameRejected", func(t *testing.T) {
		r := New[int]("Empty")
		err := r.Register("", 1)
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
		assert.Equal(t, 0, r.Len())
	})

	t.Run("MustRegisterPanicsOnInvalidName", func(t *testing.T) {
		r := New[int]("Empty")
		assert.Panics(t, func() { r.MustRegister("", 1) })
	})
}

func TestRegisterPairs(t *testing.T) {
	t.Run("SinglePair", func(t *testing.T) {
		r := New[string]("Pairs")
		require.NoError(t, r.RegisterPairs(map[string]string{"None": "123"}))
		assert.Equal(t, "123", r.MustGet("None"))
	})

	t.Run("MultiplePairsRejected", func(t *testing.T) {
		r := New[any]("TestEnumMultiple")
		err := r.RegisterPairs(map[string]any{"None": "123", "Stuff": 456})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
		assert.Equal(t, 0, r.Len())
	})

	t.Run("NoPairsRejected", func(t *testing.T) {
		r := New[any]("TestEnumNoHash")
		err := r.RegisterPairs(nil)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestDefine(t *testing.T) {
	r := New[string]("Define")

	require.NoError(t, r.Define(label("Nones"), "123"))
	require.NoError(t, r.Define(7, "456"))
	assert.Equal(t, []string{"Nones", "7"}, r.Names())

	err := r.Define(opaque{id: 1}, "789")
	assert.True(t, errors.IsValidationError(err))

	err = r.Define(nil, "789")
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, 2, r.Len())
}

func TestAccessorUnknownName(t *testing.T) {
	r := New[string]("TestEnumMissing")

	_, err := r.Accessor("whatever")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	assert.PanicsWithError(t, `TestEnumMissing has no enumerator "whatever"`, func() {
		r.MustGet("whatever")
	})
}

func TestParse(t *testing.T) {
	r := New[string]("TestEnumToValue")
	require.NoError(t, r.Register("None", "123"))
	require.NoError(t, r.Register("Somes", "456"))

	for _, descriptor := range []any{"None", "none", "NONE", "nOnE", label("none")} {
		t.Run(fmt.Sprint(descriptor), func(t *testing.T) {
			v, ok, err := r.Parse(descriptor)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "123", v)
		})
	}

	t.Run("NotFoundIsNotAnError", func(t *testing.T) {
		v, ok, err := r.Parse("missing")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("UnconvertibleDescriptor", func(t *testing.T) {
		_, _, err := r.Parse(opaque{})
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("EarliestFoldedNameWins", func(t *testing.T) {
		r := New[int]("Folded")
		require.NoError(t, r.Register("Mode", 1))
		require.NoError(t, r.Register("MODE", 2))

		v, ok, err := r.Parse("mode")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 1, v)
		assert.Equal(t, 2, r.MustGet("MODE"))
	})
}

func TestDescriptor(t *testing.T) {
	r := newInts(t)

	name, ok := r.Descriptor(3)
	assert.True(t, ok)
	assert.Equal(t, "Anys", name)

	_, ok = r.Descriptor(99)
	assert.False(t, ok)

	t.Run("AccessorOfDescriptorYieldsValue", func(t *testing.T) {
		for _, v := range r.Values() {
			name, ok := r.Descriptor(v)
			require.True(t, ok)
			get, err := r.Accessor(name)
			require.NoError(t, err)
			assert.Equal(t, v, get())
		}
	})

	t.Run("FirstRegisteredWinsOnDuplicateValues", func(t *testing.T) {
		r := New[string]("Dup")
		require.NoError(t, r.Register("First", "x"))
		require.NoError(t, r.Register("Second", "x"))
		name, ok := r.Descriptor("x")
		assert.True(t, ok)
		assert.Equal(t, "First", name)
	})
}

func TestEnumerate(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		r := New[int]("Empty")
		assert.Empty(t, r.Values())
		for range r.All() {
			t.Fatal("empty registry yielded a value")
		}
		assert.Empty(t, Map(r, func(v int) int { return v }))
	})

	t.Run("RegistrationOrder", func(t *testing.T) {
		r := newInts(t)
		want := []int{1, 2, 3, 4}

		if diff := cmp.Diff(want, r.Values()); diff != "" {
			t.Errorf("Values mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(want, slices.Collect(r.All())); diff != "" {
			t.Errorf("All mismatch (-want +got):\n%s", diff)
		}

		var each []int
		r.Each(func(v int) { each = append(each, v) })
		if diff := cmp.Diff(want, each); diff != "" {
			t.Errorf("Each mismatch (-want +got):\n%s", diff)
		}

		if diff := cmp.Diff(want, Map(r, func(v int) int { return v })); diff != "" {
			t.Errorf("Map mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Restartable", func(t *testing.T) {
		r := newInts(t)
		seq := r.All()
		assert.Equal(t, slices.Collect(seq), slices.Collect(seq))
	})

	t.Run("EarlyBreak", func(t *testing.T) {
		r := newInts(t)
		var got []int
		for v := range r.All() {
			got = append(got, v)
			if v == 2 {
				break
			}
		}
		assert.Equal(t, []int{1, 2}, got)
	})

	t.Run("MapTransforms", func(t *testing.T) {
		r := newInts(t)
		got := Map(r, func(v int) string { return fmt.Sprintf("#%d", v) })
		assert.Equal(t, []string{"#1", "#2", "#3", "#4"}, got)
	})

	t.Run("BitFlagsCoverEveryValue", func(t *testing.T) {
		r := New[int]("TestEnumToIterate")
		r.MustRegister("Nones", 0x0000)
		r.MustRegister("Somes", 0x0001)
		r.MustRegister("Anys", 0x0002)
		r.MustRegister("Each", 0x0004)

		all := r.MustGet("Nones") | r.MustGet("Somes") | r.MustGet("Anys") | r.MustGet("Each")
		r.Each(func(v int) {
			assert.Equal(t, v, all&v)
		})
	})
}

func TestContains(t *testing.T) {
	r := newInts(t)
	assert.True(t, r.Contains(2))
	assert.False(t, r.Contains(99))

	t.Run("IsolatedRegistries", func(t *testing.T) {
		include := New[int]("TestEnumToInclude")
		notInclude := New[int]("TestEnumToNotInclude")
		for i, name := range []string{"Alpha", "Beta", "Charlie", "Echo"} {
			include.MustRegister(name, i+1)
			notInclude.MustRegister(name, i+5)
		}
		x := include.MustGet("Beta")
		y := notInclude.MustGet("Beta")

		assert.True(t, include.Contains(x))
		assert.False(t, include.Contains(y))
		assert.False(t, notInclude.Contains(x))
		assert.True(t, notInclude.Contains(y))
	})
}

func TestBitFlags(t *testing.T) {
	r := New[int]("TestEnumByte")
	r.MustRegister("Nones", 0x0000)
	r.MustRegister("Somes", 0x0001)
	r.MustRegister("Anys", 0x0002)
	r.MustRegister("Each", 0x0004)

	x := r.MustGet("Nones") | r.MustGet("Anys")

	assert.False(t, x&r.MustGet("Each") == r.MustGet("Each"))
	assert.True(t, x&r.MustGet("Anys") == r.MustGet("Anys"))
	assert.True(t, x&r.MustGet("Anys") != 0)
	assert.False(t, x&r.MustGet("Somes") != 0)
}

func TestHeterogeneousValues(t *testing.T) {
	r := New[any]("Tristate")
	r.MustRegister("True", true)
	r.MustRegister("False", false)
	r.MustRegister("Undef", "Undefined")

	assert.Equal(t, true, r.MustGet("True"))
	assert.Equal(t, false, r.MustGet("False"))
	assert.Equal(t, "Undefined", r.MustGet("Undef"))

	name, ok := r.Descriptor(false)
	assert.True(t, ok)
	assert.Equal(t, "False", name)
	assert.False(t, r.Contains(1))
}

func TestEntries(t *testing.T) {
	r := newInts(t)
	entries := r.Entries()
	require.Len(t, entries, 4)
	assert.Equal(t, Entry[int]{Name: "Anys", Value: 3}, entries[2])

	entries[0].Value = 100
	assert.Equal(t, 1, r.MustGet("Nones"), "Entries must return a copy")
	assert.Equal(t, "TestEnumInts", r.TypeName())
}

func TestConcurrentRegistration(t *testing.T) {
	r := New[int]("Concurrent")
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(id int) {
			defer wg.Done()
			r.MustRegister(fmt.Sprintf("E%d", id), id)
		}(i)
		go func() {
			defer wg.Done()
			for _, e := range r.Entries() {
				get, err := r.Accessor(e.Name)
				if err != nil {
					t.Errorf("accessor missing for registered name %q", e.Name)
					continue
				}
				if got := get(); got != e.Value {
					t.Errorf("accessor %q returned %d, want %d", e.Name, got, e.Value)
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, r.Len())
	for i := 0; i < 50; i++ {
		assert.True(t, r.Contains(i))
	}
}
