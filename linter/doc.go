// Copyright 2026 The letguard Authors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package linter is letguard's public surface.
//
// # Overview
//
// letguard detects let expressions whose body merely returns a value bound
// in that same let, and inlines them.
//
// # Example
//
// Before:
//
//	greeting =
//	    let
//	        message =
//	            "hello"
//	    in
//	    message
//
// After applying letguard's fix:
//
//	greeting =
//	    "hello"
//
// The same applies to tuple destructurings and to destructurings of
// single-constructor, non-generic custom types. A let body referencing a
// bound function (a binding with parameters) is still reported, but cannot
// be fixed automatically.
package linter
