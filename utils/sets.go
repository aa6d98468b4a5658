package utils

// AppendUnique appends value to list unless it is already present. The
// mirrored relationship lists (connections, requests, members, likes)
// rely on this to keep set semantics.
func AppendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}

// Remove deletes every occurrence of value from list, preserving order.
func Remove(list []string, value string) []string {
	out := list[:0]
	for _, v := range list {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}

// Contains reports whether value is present in list.
func Contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

// Toggle removes value if present, otherwise appends it. Applying it
// twice returns the list to its original membership.
func Toggle(list []string, value string) []string {
	if Contains(list, value) {
		return Remove(list, value)
	}
	return append(list, value)
}
