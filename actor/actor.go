/*
 * MIT License
 *
 * Copyright (c) 2024-2026 gramkit Authors
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
 */

package actor

// Actor is the lifecycle contract an actor implementation fulfills. The
// runtime core defines the contract; invoking the callbacks is the job of
// the external driver that schedules actors.
//
// StartUp runs once before the first LoopExec. Wakeup runs each time the
// actor is resumed after yielding. LoopExec performs one unit of work and
// reports whether more work is pending. TimeoutExpired runs when the driver
// observes an expired advisory deadline. Hangup runs when the actor is asked
// to stop; TearDown runs once after the last LoopExec.
type Actor interface {
	StartUp()
	Wakeup()
	LoopExec() bool
	TimeoutExpired()
	Hangup()
	TearDown()
}
