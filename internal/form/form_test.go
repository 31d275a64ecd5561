package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_DefaultsMatchSchema(t *testing.T) {
	s := NewStore()
	st := s.State()

	assert.False(t, st.Submitted)
	assert.Nil(t, st.LastSubmission)
	assert.Equal(t, DefaultValues(), st.Values)
	assert.Equal(t, "", st.Values.Country, "country defaults to the first option")
	assert.Len(t, st.Values.Interests, len(Interests))
	for name, checked := range st.Values.Interests {
		assert.False(t, checked, "interest %s should start unchecked", name)
	}
}

func TestStore_SubmitCapturesValues(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.SetField(FieldUsername, "山田太郎"))
	require.NoError(t, s.SetField(FieldEmail, "yamada@example.com"))
	require.NoError(t, s.SetField(FieldAge, "30"))
	require.NoError(t, s.SetField(FieldCountry, "japan"))
	require.NoError(t, s.ToggleInterest(InterestReading, true))

	got := s.Submit()

	want := DefaultValues()
	want.Username = "山田太郎"
	want.Email = "yamada@example.com"
	want.Age = "30"
	want.Country = "japan"
	want.Interests[InterestReading] = true
	assert.Equal(t, want, got)

	st := s.State()
	assert.True(t, st.Submitted)
	require.NotNil(t, st.LastSubmission)
	assert.Equal(t, want, *st.LastSubmission)
}

func TestStore_SubmitSnapshotIsDetached(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.SetField(FieldUsername, "before"))
	snap := s.Submit()

	require.NoError(t, s.SetField(FieldUsername, "after"))
	require.NoError(t, s.ToggleInterest(InterestMusic, true))

	assert.Equal(t, "before", snap.Username)
	assert.False(t, snap.Interests[InterestMusic])
	assert.Equal(t, "before", s.State().LastSubmission.Username)
}

func TestStore_ToggleInterestIsIndependent(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.ToggleInterest(InterestReading, true))
	require.NoError(t, s.ToggleInterest(InterestMusic, true))

	v := s.State().Values
	assert.True(t, v.Interests[InterestReading])
	assert.True(t, v.Interests[InterestMusic])
	assert.False(t, v.Interests[InterestSports])

	require.NoError(t, s.ToggleInterest(InterestReading, false))
	v = s.State().Values
	assert.False(t, v.Interests[InterestReading])
	assert.True(t, v.Interests[InterestMusic])
}

func TestStore_UnknownFieldFails(t *testing.T) {
	s := NewStore()
	err := s.SetField("nickname", "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownField))

	var ufe *UnknownFieldError
	require.True(t, errors.As(err, &ufe))
	assert.Equal(t, "nickname", ufe.Name)

	err = s.ToggleInterest("cooking", true)
	require.ErrorIs(t, err, ErrUnknownField)
	assert.Contains(t, err.Error(), "interests")

	assert.Equal(t, DefaultValues(), s.State().Values, "failed calls leave state untouched")
}

func TestStore_SetInterestsReplacesSet(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.ToggleInterest(InterestSports, true))
	require.NoError(t, s.SetField(FieldInterests, "reading, music"))

	v := s.State().Values
	assert.Equal(t, []string{InterestReading, InterestMusic}, v.CheckedInterests())

	err := s.SetField(FieldInterests, "reading,cooking")
	require.ErrorIs(t, err, ErrUnknownField)
	assert.Equal(t, []string{InterestReading, InterestMusic}, s.State().Values.CheckedInterests())

	require.NoError(t, s.SetField(FieldInterests, ""))
	assert.Empty(t, s.State().Values.CheckedInterests())
}

func TestStore_ResetRestoresDefaults(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.SetField(FieldUsername, "テストユーザー"))
	require.NoError(t, s.SetField(FieldEmail, "test@example.com"))
	require.NoError(t, s.SetField(FieldAge, "25"))
	require.NoError(t, s.SetField(FieldCountry, "usa"))
	require.NoError(t, s.SetField(FieldMessage, "これはテストメッセージです。\n複数行のテキストです。"))
	require.NoError(t, s.ToggleInterest(InterestMusic, true))
	s.Submit()

	s.Reset()

	st := s.State()
	assert.Equal(t, DefaultValues(), st.Values)
	assert.False(t, st.Submitted)
	assert.Nil(t, st.LastSubmission)
}

func TestStore_RawValuesAreNotValidated(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.SetField(FieldAge, "not-a-number"))
	require.NoError(t, s.SetField(FieldCountry, "atlantis"))
	v := s.State().Values
	assert.Equal(t, "not-a-number", v.Age)
	assert.Equal(t, "atlantis", v.Country)
}

func TestValues_Summary(t *testing.T) {
	v := DefaultValues()
	v.Username = "山田太郎"
	v.Country = "japan"
	v.Interests[InterestReading] = true
	v.Message = "テストメッセージ"

	out := v.Summary()
	assert.Contains(t, out, "送信されたデータ")
	assert.Contains(t, out, "ユーザー名: 山田太郎")
	assert.Contains(t, out, "国: 日本")
	assert.Contains(t, out, "趣味: 読書")
	assert.Contains(t, out, "メッセージ: テストメッセージ")
}

func TestLookupField(t *testing.T) {
	spec, ok := LookupField(FieldAge)
	require.True(t, ok)
	assert.Equal(t, KindNumber, spec.Kind)
	assert.Equal(t, "number", spec.Kind.String())

	_, ok = LookupField("nope")
	assert.False(t, ok)
}
