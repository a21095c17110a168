package entry

type Repository interface {
	Create(input NewEntry) (*LogEntry, error)
	Delete(id string) error
	Update(updated LogEntry) error
	List() ([]LogEntry, error)
}
