package normalize

import "strings"

// syntheticPrefixes are the record-name prefixes the translator invents
// for anonymous and tag-named records.
var syntheticPrefixes = []string{"struct_", "union_", "enum_"}

// syntheticBase strips the synthetic record prefix from name. Returns
// false when name carries no such prefix.
func syntheticBase(name string) (string, bool) {
	for _, prefix := range syntheticPrefixes {
		if rest, ok := strings.CutPrefix(name, prefix); ok && rest != "" {
			return rest, true
		}
	}

	return "", false
}

// CollapseDuplicates collapses each duplicate type-alias pair — a
// synthetic record declaration adjacent to an alias of its base name —
// into a single declaration under the public name. Both orderings are
// recognized. When the three involved names do not resolve to the same
// base identifier, both declarations are left untouched: never guess.
//
// One pass only; output is not re-scanned for newly adjacent pairs.
func CollapseDuplicates(src string) string {
	lines, trailingNewline := splitLines(src)

	out := make([]string, 0, len(lines))

	for i := 0; i < len(lines); {
		name, rest, ok := declHead(lines[i])
		if !ok {
			out = append(out, lines[i])
			i++

			continue
		}

		// Record first, alias on the line after the closing brace.
		if base, isSynthetic := syntheticBase(name); isSynthetic && strings.Contains(rest, "{") {
			if end, balanced := blockEnd(lines, i, rest); balanced && end+1 < len(lines) {
				aliasName, aliasTarget, isAlias := aliasDecl(lines[end+1])
				if isAlias && aliasName == base && aliasTarget == name {
					out = append(out, renameDecl(lines[i], name, aliasName))
					out = append(out, lines[i+1:end+1]...)
					i = end + 2

					continue
				}
			}
		}

		// Alias first, record on the next line.
		if target, isAlias := aliasTail(rest); isAlias && i+1 < len(lines) {
			recName, recRest, isDecl := declHead(lines[i+1])
			if isDecl && recName == target && strings.Contains(recRest, "{") {
				base, isSynthetic := syntheticBase(recName)
				if isSynthetic && base == name {
					if end, balanced := blockEnd(lines, i+1, recRest); balanced {
						out = append(out, renameDecl(lines[i+1], recName, name))
						out = append(out, lines[i+2:end+1]...)
						i = end + 1

						continue
					}
				}
			}
		}

		out = append(out, lines[i])
		i++
	}

	return joinLines(out, trailingNewline)
}

// aliasDecl matches `pub const <name> = <target>;` and returns both
// identifiers.
func aliasDecl(line string) (name, target string, ok bool) {
	name, rest, ok := declHead(line)
	if !ok {
		return "", "", false
	}

	target, ok = aliasTail(rest)
	if !ok {
		return "", "", false
	}

	return name, target, true
}

// aliasTail matches a declaration body of the form `<identifier>;`.
func aliasTail(rest string) (string, bool) {
	rest = strings.TrimRight(rest, " \t")

	target, found := strings.CutSuffix(rest, ";")
	if !found || target == "" {
		return "", false
	}

	for i := 0; i < len(target); i++ {
		if !isIdentChar(target[i]) {
			return "", false
		}
	}

	return target, true
}

// blockEnd returns the index of the line on which the brace depth opened
// by headRest returns to zero. A head whose braces already balance is its
// own end (single-line record).
func blockEnd(lines []string, start int, headRest string) (int, bool) {
	depth := braceDelta(headRest)
	if depth == 0 {
		return start, true
	}

	if depth < 0 {
		return 0, false
	}

	for j := start + 1; j < len(lines); j++ {
		depth += braceDelta(lines[j])
		if depth == 0 {
			return j, true
		}

		if depth < 0 {
			return 0, false
		}
	}

	return 0, false
}

func braceDelta(line string) int {
	return strings.Count(line, "{") - strings.Count(line, "}")
}

// renameDecl rewrites the declared name on a declaration head line.
func renameDecl(line, oldName, newName string) string {
	return strings.Replace(line, "const "+oldName, "const "+newName, 1)
}
