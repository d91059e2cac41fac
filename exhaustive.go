package inorder

// VerifyNoMoreInteractions returns an UnexpectedInteractions failure listing every
// invocation on mocks that no verification has consumed. It never changes what is
// verified, so calling it repeatedly gives the same answer.
func VerifyNoMoreInteractions(mocks ...*Mock) error {
	ledger, err := ledgerOf(mocks)
	if err != nil {
		return err
	}
	if ledger == nil {
		return nil
	}

	if unverified := ledger.UnverifiedFor(mocks...); len(unverified) > 0 {
		Logger.Printf("verify/no-more-interactions found %d unverified invocations\n", len(unverified))
		return newInteractionsError(unverified, false)
	}
	return nil
}

// VerifyZeroInteractions returns an UnexpectedInteractions failure if anything at all
// was recorded on mocks, verified or not.
func VerifyZeroInteractions(mocks ...*Mock) error {
	ledger, err := ledgerOf(mocks)
	if err != nil {
		return err
	}
	if ledger == nil {
		return nil
	}

	if recorded := ledger.InvocationsFor(mocks...); len(recorded) > 0 {
		Logger.Printf("verify/zero-interactions found %d invocations\n", len(recorded))
		return newInteractionsError(recorded, true)
	}
	return nil
}
