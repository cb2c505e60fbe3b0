package ledger

// RefCache memoizes account and department lookups against the client for
// the duration of one allocation run. Construct a fresh cache per run; there
// is no process-wide state, so concurrent runs for different months cannot
// observe each other's references.
type RefCache struct {
	client      Client
	accounts    map[string]Ref
	departments map[string]Ref
}

func NewRefCache(client Client) *RefCache {
	return &RefCache{
		client:      client,
		accounts:    make(map[string]Ref),
		departments: make(map[string]Ref),
	}
}

func (c *RefCache) AccountRef(accountNum string) (Ref, error) {
	if ref, found := c.accounts[accountNum]; found {
		return ref, nil
	}

	ref, err := c.client.AccountRef(accountNum)
	if err != nil {
		return Ref{}, err
	}

	c.accounts[accountNum] = ref
	return ref, nil
}

func (c *RefCache) DepartmentRef(storeID string) (Ref, error) {
	if ref, found := c.departments[storeID]; found {
		return ref, nil
	}

	ref, err := c.client.DepartmentRef(storeID)
	if err != nil {
		return Ref{}, err
	}

	c.departments[storeID] = ref
	return ref, nil
}
