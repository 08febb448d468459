// Package repository is the worked example for the test-double catalogue:
// a small key-value capability, two real implementations, and one double of
// each kind, with the tests spelling out when to reach for which.
//
// # Naming conventions used in the test files
//
// Test functions state the behavior, not the mechanism:
//
//	Test{Type}_{Method}                  happy path for one operation
//	Test{Type}_{Method}_{Condition}     a specific edge or failure
//	Test{Function}_{ExpectedBehavior}   free functions under test
//
// Group related cases with a table inside one function when they share a
// single behavior; give each case a short name so failures read well and
// -run can filter them.
//
// # Choosing a double
//
//   - DummyRepository: the parameter list demands a Repository that the
//     code path never touches.
//   - FakeRepository: real behavior without the round trip; the default
//     choice for fast correctness tests.
//   - StubRepository: the test needs fixed, deterministic data, including
//     states the real store rarely produces.
//   - SpyRepository: the assertion is about the interaction itself (how
//     many calls, with what, in what order).
//
// Doubles are production code here on purpose: keeping them compiled and
// tested alongside the real implementations stops them drifting from the
// contract they imitate.
package repository
