package numeric

// Adding returns the sum of the augend and the addend.
func Adding[T Addable[T]](augend T, addend T) T {
	return augend.Add(addend)
}

// AddAssign adds the addend to the value that sum points to.
func AddAssign[T Addable[T]](sum *T, addend T) {
	*sum = (*sum).Add(addend)
}

func Subtracting[T Subtractable[T]](minuend T, subtrahend T) T {
	return minuend.Subtract(subtrahend)
}

func SubtractAssign[T Subtractable[T]](difference *T, subtrahend T) {
	*difference = (*difference).Subtract(subtrahend)
}
