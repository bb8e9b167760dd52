package game

// Duty rotation is pure index arithmetic over the live order slice. When the
// owner has departed, ok is false and the duty simply is not assigned to
// anyone for that chain this round.

// DrawerFor resolves who draws the given owner's prompt.
func DrawerFor(order []string, owner string) (string, bool) {
	return rotate(order, owner, 1)
}

// GuesserFor resolves who guesses the drawing of the given owner's chain.
// With only two players both duties land on the single other player.
func GuesserFor(order []string, owner string) (string, bool) {
	offset := 2
	if len(order) == 2 {
		offset = 1
	}
	return rotate(order, owner, offset)
}

func rotate(order []string, owner string, offset int) (string, bool) {
	// Below two players every rotation lands back on the owner.
	if len(order) < 2 {
		return "", false
	}
	for i, id := range order {
		if id == owner {
			return order[(i+offset)%len(order)], true
		}
	}
	return "", false
}
