package game

type Director interface {
	/**
	 * Initialize the director
	 */
	Init(*GridState)

	/**
	 * Choose the direction for the next tick
	 */
	Act() Direction

	/**
	 * Stop acting
	 */
	End()
}
