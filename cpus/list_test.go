// Copyright 2024 Harald Albrecht.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy
// of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

package cpus

import (
	. "github.com/onsi/ginkgo/v2/dsl/core"
	. "github.com/onsi/ginkgo/v2/dsl/table"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var _ = Describe("cpu lists", func() {

	DescribeTable("generating textual representations",
		func(list List, expected string) {
			Expect(list.String()).To(Equal(expected))
		},
		Entry(nil, List{}, ""),
		Entry(nil, List{{1, 1}, {2, 42}, {666, 666}}, "1,2-42,666"),
		Entry(nil, List{{2, 42}}, "2-42"),
		Entry(nil, List{{2, 42}, {777, 778}}, "2-42,777-778"),
	)

	DescribeTable("parsing lists from text",
		func(text string, expected List) {
			Expect(NewList([]byte(text))).To(Equal(expected))
		},
		Entry("nothing from nothing", "", List{}),
		Entry("single cpu", "42", List{{42, 42}}),
		Entry("single range", "42-666", List{{42, 666}}),
		Entry("multiple individual cpus", "42,666", List{{42, 42}, {666, 666}}),
		Entry("altogether", "1-42,666,1000-1001", List{{1, 42}, {666, 666}, {1000, 1001}}),
		Entry("single cpu range", "7-7", List{{7, 7}}),
	)

	DescribeTable("parsing errors",
		func(s string, msg string) {
			Expect(NewList([]byte(s))).Error().To(MatchError(msg))
		},
		Entry(nil, "abc", "expected unsigned integer number"),
		Entry(nil, "0abc", "expected '-' or ','"),
		Entry(nil, "1-z", "expected unsigned integer number"),
		Entry(nil, "0-0abc", "expected ','"),
		Entry(nil, "1,", "expected unsigned integer number"),
		Entry(nil, "1-2,", "expected unsigned integer number"),
		Entry(nil, "5-3", "expected range end not below range start"),
		Entry(nil, "18446744073709551619", "CPU number out of range"),
		Entry(nil, "1-18446744073709551619", "CPU number out of range"),
	)

	It("converts a list into a set", func() {
		Expect(List{}.Set().String()).To(BeEmpty())
		Expect(Successful(NewList([]byte("3,5,666"))).Set().String()).To(Equal("3,5,666"))
	})

	DescribeTable("converting into masks",
		func(text string, expected Mask) {
			Expect(Successful(NewList([]byte(text))).Mask()).To(Equal(expected))
		},
		Entry(nil, "", Mask(0)),
		Entry(nil, "0-3", Mask(15)),
		Entry(nil, "0,2", Mask(5)),
		Entry(nil, "62-65", Mask(3)<<62),
		Entry(nil, "64-100,1", Mask(2)),
	)

})
