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

// Package agent gives the three concrete player implementations (search,
// random, interactive) a single uniform contract: given a position, what
// should this side do.
package agent

import "gambit/internal/chess"

// Kind tags the variant an Action holds.
type Kind uint8

const (
	MakeMove Kind = iota
	OfferDraw
	AcceptDraw
	DeclareDraw
	Resign
)

// Action is what an Agent decides to do on its turn. Only MakeMove
// carries a payload; the rest are bare signals.
type Action struct {
	Kind Kind
	Move chess.Move
}

// Agent decides what to do in a position. GetAction must not mutate pos.
type Agent interface {
	GetAction(pos *chess.Position) Action
}
