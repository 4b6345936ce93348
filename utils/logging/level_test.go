// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlignedString(t *testing.T) {
	require := require.New(t)

	levels := []Level{Off, Fatal, Error, Warn, Info, Trace, Debug, Verbo}
	for _, l := range levels {
		as := l.AlignedString()
		require.Len(as, alignedStringLen)
		s := l.String()
		switch {
		case len(s) >= alignedStringLen:
			require.Equal(s[:alignedStringLen], as)
		default:
			require.Equal(s, as[:len(s)])
			require.Equal(as[len(s):], strings.Repeat(" ", alignedStringLen-len(s)))
		}
	}
}

func TestToLevel(t *testing.T) {
	tests := []struct {
		in          string
		expected    Level
		expectedErr bool
	}{
		{in: "info", expected: Info},
		{in: "DEBUG", expected: Debug},
		{in: "Verbo", expected: Verbo},
		{in: "off", expected: Off},
		{in: "loud", expected: Off, expectedErr: true},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			require := require.New(t)

			level, err := ToLevel(test.in)
			if test.expectedErr {
				require.Error(err)
			} else {
				require.NoError(err)
			}
			require.Equal(test.expected, level)
		})
	}
}

func TestLevelOrdering(t *testing.T) {
	require := require.New(t)

	ordered := []Level{Verbo, Debug, Trace, Info, Warn, Error, Fatal, Off}
	for i := 1; i < len(ordered); i++ {
		require.Less(ordered[i-1], ordered[i])
	}
}

func TestLevelJSON(t *testing.T) {
	require := require.New(t)

	b, err := json.Marshal(Warn)
	require.NoError(err)
	require.Equal(`"WARN"`, string(b))

	var l Level
	require.NoError(json.Unmarshal(b, &l))
	require.Equal(Warn, l)

	require.Error(json.Unmarshal([]byte(`"nope"`), &l))
}
