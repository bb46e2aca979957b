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

package letbody

import "github.com/letguard/letguard/internal/ast"

// Catalog is the set of constructor names that are safe to treat like
// destructuring targets: constructors of custom types with no type
// parameters and exactly one variant. Built once per module and read-only
// afterwards.
type Catalog map[string]struct{}

// BuildCatalog scans a module's top-level declarations for eligible
// constructors. Multi-variant and generic types contribute nothing, since
// destructuring them in a let is either impossible or not shape-stable.
func BuildCatalog(decls []ast.Declaration) Catalog {
	catalog := make(Catalog)

	for _, decl := range decls {
		t, ok := decl.(*ast.TypeDeclaration)
		if !ok || len(t.Params) != 0 || len(t.Constructors) != 1 {
			continue
		}

		catalog[t.Constructors[0].Name] = struct{}{}
	}

	return catalog
}

// Has reports whether name is a cataloged constructor.
func (c Catalog) Has(name string) bool {
	_, ok := c[name]

	return ok
}
