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

package level

// The relay's entire level vocabulary runs through two call sites:
//
//	log := logger.New(loglvl.Parse(cfg.LogLevel))
//
// at startup in cmd/relay/main.go, where cfg.LogLevel has already been
// rejected by validator's oneof=panic fatal error warning info debug tag if
// it wasn't one of the six tokens Parse understands; and
//
//	l.lg.SetLevel(lvl.Logrus())
//
// in logger.New and logger.SetLevel, where the resulting Level is handed to
// logrus. There is deliberately no seventh config token for NilLevel: it
// exists only so logger.New(loglvl.NilLevel) can be used directly by callers
// (tests, or a future --quiet flag) that want logging off without going
// through config parsing at all. logger.Entry turns every entry of a NilLevel
// logger into a NilLevel entry and entry.Log drops those; Logrus's
// math.MaxInt32 value for NilLevel is a threshold at which logrus filters
// nothing, so it plays no part in that suppression.
//
// hclog.go compares levels numerically (GetLevel() >= loglvl.DebugLevel) to
// decide whether a given hclog.Level's IsDebug/IsInfo/... predicate should
// report true, which is why the iota ordering below is load-bearing: Debug
// must stay the least severe and Panic the most, with nothing reordered
// between releases.
