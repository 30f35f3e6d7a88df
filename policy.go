package scrolltail

// extraItemCount computes how many synthetic trailing items to append.
//
// An error state always collapses to a single error slot, regardless of the
// configured loader count. When no more pages can be fetched nothing is
// appended. Otherwise one loader item is appended per configured slot
// (loaders is validated to be >= 1).
func extraItemCount(hasError, canFetchMore bool, loaders int) int {
	switch {
	case hasError:
		return 1
	case !canFetchMore:
		return 0
	default:
		return loaders
	}
}

// trailingView renders the synthetic trailing item at the given relative
// index. In the error state only index 0 exists and it renders the error
// item. Otherwise every slot renders a loader; slots past index 0 are purely
// decorative (the fetch signal is tied to index 0 becoming visible, so a
// batch of loader cells appearing in one scroll gesture fires once).
func (m *Model) trailingView(rel int) string {
	if m.cfg.HasError {
		return m.cfg.ErrorBuilder()
	}
	return m.cfg.LoadingBuilder(rel)
}
