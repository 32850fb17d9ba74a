package imap

// UntaggedKind identifies which kind of mailbox or status data an
// untagged Response carries.
type UntaggedKind string

const (
	UntaggedStatusResponse UntaggedKind = "status-response" // OK/NO/BAD/PREAUTH/BYE
	UntaggedCapability     UntaggedKind = "CAPABILITY"
	UntaggedEnabled        UntaggedKind = "ENABLED"
	UntaggedFlags          UntaggedKind = "FLAGS"
	UntaggedExists         UntaggedKind = "EXISTS"
	UntaggedRecent         UntaggedKind = "RECENT"
	UntaggedExpunge        UntaggedKind = "EXPUNGE"
	UntaggedFetch          UntaggedKind = "FETCH"
	UntaggedList           UntaggedKind = "LIST"
	UntaggedLSub           UntaggedKind = "LSUB"
	UntaggedStatusData     UntaggedKind = "STATUS"
	UntaggedSearch         UntaggedKind = "SEARCH"
	UntaggedESearch        UntaggedKind = "ESEARCH"
	UntaggedNamespace      UntaggedKind = "NAMESPACE"
	UntaggedQuota          UntaggedKind = "QUOTA"
	UntaggedQuotaRoot      UntaggedKind = "QUOTAROOT"
	UntaggedACL            UntaggedKind = "ACL"
	UntaggedListRights     UntaggedKind = "LISTRIGHTS"
	UntaggedMyRights       UntaggedKind = "MYRIGHTS"
	UntaggedID             UntaggedKind = "ID"
	UntaggedUnknown        UntaggedKind = "UNKNOWN"
)

// UntaggedData holds the payload of one untagged Response. Exactly
// one field beyond Kind (and, for UntaggedUnknown, Raw) is populated,
// selected by Kind.
//
// A single kitchen-sink struct, rather than an interface with one
// implementation per kind, follows the shape the source already uses
// for StatusData and ListData: most fields on a given kind's payload
// are themselves optional, so one more layer of optional fields at the
// dispatch level matches the existing idiom instead of introducing a
// second polymorphism style alongside it.
type UntaggedData struct {
	Kind UntaggedKind

	// Num is set for EXISTS, RECENT, and EXPUNGE.
	Num uint32

	Status *StatusResponse

	Capability []Cap
	Enabled    []Cap
	Flags      []Flag
	Fetch      *FetchMessageData
	List       *ListData
	StatusData *StatusData
	Search     *SearchData
	ESearch    *ESearchData
	Namespace  *NamespaceData
	Quota      *QuotaData
	QuotaRoot  *QuotaRootData
	ACL        *ACLData
	ListRights *ListRightsData
	MyRights   *MyRightsData
	ID         map[string]string

	// Raw holds the unparsed remainder of the line for
	// UntaggedUnknown, which is only ever produced when ParseOptions
	// does not have StrictMode set.
	Raw string
}
