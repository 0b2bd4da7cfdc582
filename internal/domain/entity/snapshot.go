package entity

// Snapshot es la representación serializable de la base de datos de la tienda:
// las tres colecciones y el siguiente ID de usuario a asignar.
type Snapshot struct {
	Items        []*Item        `json:"items"`
	Users        []*User        `json:"users"`
	Transactions []*Transaction `json:"transactions"`
	NextUserID   int            `json:"next_user_id"`
}

// Clone devuelve una copia profunda del snapshot.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return &Snapshot{NextUserID: 1}
	}
	out := &Snapshot{
		Items:        make([]*Item, 0, len(s.Items)),
		Users:        make([]*User, 0, len(s.Users)),
		Transactions: make([]*Transaction, 0, len(s.Transactions)),
		NextUserID:   s.NextUserID,
	}
	for _, it := range s.Items {
		out.Items = append(out.Items, it.Clone())
	}
	for _, u := range s.Users {
		out.Users = append(out.Users, u.Clone())
	}
	for _, t := range s.Transactions {
		tx := *t
		out.Transactions = append(out.Transactions, &tx)
	}
	return out
}
