/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package version_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rtbhouse/log-relay/version"
)

type anchor struct{}

func TestNewVersion_GettersReturnConstructorValues(t *testing.T) {
	v := version.NewVersion(
		version.License_MIT,
		"log-relay",
		"Local Log Relay",
		"2026-07-30T00:00:00Z",
		"abc123",
		"v1.0.0",
		"RTB House",
		"relay",
		anchor{},
		0,
	)

	assert.Equal(t, "log-relay", v.GetPackage())
	assert.Equal(t, "Local Log Relay", v.GetDescription())
	assert.Equal(t, "abc123", v.GetBuild())
	assert.Equal(t, "v1.0.0", v.GetRelease())
	assert.Equal(t, "RELAY", v.GetPrefix())
	assert.Contains(t, v.GetAuthor(), "RTB House")
	assert.Contains(t, v.GetAuthor(), "source")
	assert.Equal(t, "MIT License", v.GetLicenseName())
	assert.Contains(t, v.GetRootPackagePath(), "rtbhouse/log-relay/version")
}

func TestNewVersion_InvalidDateFallsBackToNow(t *testing.T) {
	before := time.Now()
	v := version.NewVersion(version.License_MIT, "p", "d", "not-a-date", "b", "r", "a", "pfx", anchor{}, 0)
	after := time.Now()

	got := v.GetTime()
	assert.True(t, !got.Before(before) && !got.After(after))
}

func TestNewVersion_EmptyOrNonamePackageDerivedFromReflection(t *testing.T) {
	v1 := version.NewVersion(version.License_MIT, "", "d", "", "b", "r", "a", "pfx", anchor{}, 0)
	v2 := version.NewVersion(version.License_MIT, "noname", "d", "", "b", "r", "a", "pfx", anchor{}, 0)

	assert.Equal(t, "version_test", v1.GetPackage())
	assert.Equal(t, "version_test", v2.GetPackage())
}

func TestNewVersion_NumSubPackageTrimsPath(t *testing.T) {
	v := version.NewVersion(version.License_MIT, "p", "d", "", "b", "r", "a", "pfx", anchor{}, 1)
	assert.NotContains(t, v.GetRootPackagePath(), "/version")
}

func TestGetLicenseName_VariesByLicense(t *testing.T) {
	gpl := version.NewVersion(version.License_GNU_GPL_v3, "p", "d", "", "b", "r", "a", "pfx", anchor{}, 0)
	apache := version.NewVersion(version.License_Apache_v2, "p", "d", "", "b", "r", "a", "pfx", anchor{}, 0)

	assert.Contains(t, gpl.GetLicenseName(), "GENERAL PUBLIC LICENSE")
	assert.Contains(t, apache.GetLicenseName(), "Apache License")
}

func TestString_ContainsCoreFields(t *testing.T) {
	v := version.NewVersion(version.License_MIT, "log-relay", "d", "", "abc123", "v1.0.0", "a", "pfx", anchor{}, 0)
	s := v.String()

	assert.True(t, strings.Contains(s, "log-relay"))
	assert.True(t, strings.Contains(s, "v1.0.0"))
	assert.True(t, strings.Contains(s, "abc123"))
}

func TestCheckGo_CurrentRuntimeSatisfiesOpenConstraint(t *testing.T) {
	err := version.CheckGo(">= 1.0")
	assert.Nil(t, err)
}

func TestCheckGo_ImpossibleConstraintFails(t *testing.T) {
	err := version.CheckGo(">= 99.0")
	assert.NotNil(t, err)
	assert.Equal(t, version.ErrorGoVersionConstraint, err.GetCode())
}

func TestCheckGo_InvalidConstraintSyntaxFails(t *testing.T) {
	err := version.CheckGo("not-a-constraint")
	assert.NotNil(t, err)
}
