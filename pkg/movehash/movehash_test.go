// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package movehash

import "testing"

func TestRoundTrip(t *testing.T) {
	for i := 0; i < Size; i++ {
		hash := uint16(i)
		if got := Encode(Decode(hash)); got != hash {
			t.Errorf("Encode(Decode(%d)) = %d, want %d", hash, got, hash)
		}
	}
}
