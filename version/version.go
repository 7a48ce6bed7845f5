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

// Package version carries the relay binary's build identity: package name,
// description, build hash, release tag, license, and author, plus a helper
// to gate startup on the running Go runtime satisfying a version constraint.
package version

import (
	"fmt"
	"path"
	"reflect"
	"strings"
	"time"
)

// Version exposes a binary's build identity for --version output and
// startup banners.
type Version interface {
	GetPackage() string
	GetRootPackagePath() string
	GetDescription() string
	GetTime() time.Time
	GetDate() string
	GetBuild() string
	GetRelease() string
	GetAuthor() string
	GetPrefix() string
	GetLicenseName() string
	GetLicenseBoiler(License) string
	GetLicenseFull(License) string
	GetLicenseLegal(License) string
	String() string
}

type info struct {
	license     License
	pkg         string
	description string
	date        time.Time
	build       string
	release     string
	author      string
	prefix      string
	pkgPath     string
}

const dateLayout = "2006-01-02T15:04:05Z07:00"

// NewVersion builds a Version. dateStr is parsed as RFC3339; an invalid or
// empty value falls back to time.Now(). pkg "" or "noname" is replaced by
// the package name of anchor as seen by reflection. numSubPackage trims that
// many trailing path segments off the reflected package path, to let a
// leaf package report its module's root path instead of its own.
func NewVersion(license License, pkg, description, dateStr, build, release, author, prefix string, anchor interface{}, numSubPackage int) Version {
	t, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		t = time.Now()
	}

	pkgPath := reflect.TypeOf(anchor).PkgPath()
	for i := 0; i < numSubPackage; i++ {
		pkgPath = path.Dir(pkgPath)
	}

	if pkg == "" || pkg == "noname" {
		pkg = path.Base(reflect.TypeOf(anchor).PkgPath())
	}

	return &info{
		license:     license,
		pkg:         pkg,
		description: description,
		date:        t,
		build:       build,
		release:     release,
		author:      author,
		prefix:      strings.ToUpper(prefix),
		pkgPath:     pkgPath,
	}
}

func (i *info) GetPackage() string         { return i.pkg }
func (i *info) GetRootPackagePath() string { return i.pkgPath }
func (i *info) GetDescription() string     { return i.description }
func (i *info) GetTime() time.Time         { return i.date }
func (i *info) GetDate() string            { return i.date.Format(dateLayout) }
func (i *info) GetBuild() string           { return i.build }
func (i *info) GetRelease() string         { return i.release }
func (i *info) GetPrefix() string          { return i.prefix }

func (i *info) GetAuthor() string {
	return fmt.Sprintf("%s (source: %s)", i.author, i.pkgPath)
}

func (i *info) GetLicenseName() string { return lookupLicense(i.license).name }

func (i *info) GetLicenseBoiler(l License) string { return lookupLicense(l).boiler }
func (i *info) GetLicenseFull(l License) string {
	lic := lookupLicense(l)
	return lic.name + "\n\n" + lic.boiler
}
func (i *info) GetLicenseLegal(l License) string { return lookupLicense(l).legal }

func (i *info) String() string {
	return fmt.Sprintf("%s %s (%s, built %s, %s)", i.pkg, i.release, i.build, i.GetDate(), i.GetLicenseName())
}
