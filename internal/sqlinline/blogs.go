package sqlinline

// The blogs table is a document collection: an opaque JSONB payload keyed
// by a server-assigned uuid.
//
//	create table blogs (
//	  id         uuid primary key default gen_random_uuid(),
//	  document   jsonb not null,
//	  created_at timestamptz not null default now()
//	);

const QInsertBlog = `--sql 17d9988f-86e6-4521-b52c-7cbf728453f5
insert into blogs (document)
values ($1::jsonb)
returning id, created_at;
`

const QListBlogs = `--sql 69b80c47-1906-407b-b85a-6a9e10ede273
select id, document, created_at
from blogs
order by created_at desc
limit 100;
`

const QSelectBlog = `--sql 72db9f4e-695e-423e-9abc-208a45d2f269
select id, document, created_at
from blogs
where id = $1::uuid;
`

const QUpdateBlog = `--sql 9b82d45d-eec1-4175-b720-62e487f99d1d
update blogs
set document = document || $2::jsonb
where id = $1::uuid;
`

const QDeleteBlog = `--sql 863b7ea7-5892-4d03-a592-b6d7dbd265b4
delete from blogs
where id = $1::uuid;
`
