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

package version

import (
	"runtime"
	"strings"

	goversion "github.com/hashicorp/go-version"

	liberr "github.com/rtbhouse/log-relay/errors"
)

// CheckGo verifies that the running Go runtime satisfies constraint, a
// hashicorp/go-version constraint string such as ">= 1.21, < 2.0".
func CheckGo(constraint string) liberr.Error {
	raw := strings.TrimPrefix(runtime.Version(), "go")

	cur, err := goversion.NewVersion(raw)
	if err != nil {
		return ErrorGoVersionRuntime.Error(err)
	}

	cst, err := goversion.NewConstraint(constraint)
	if err != nil {
		return ErrorGoVersionRuntime.Error(err)
	}

	if !cst.Check(cur) {
		return ErrorGoVersionConstraint.Errorf("go runtime %s does not satisfy constraint %q", cur.String(), constraint)
	}

	return nil
}
