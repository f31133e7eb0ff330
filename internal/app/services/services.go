package services

// Services defined in this package:
// - StudentService: manual roster entry and single-record operations
// - RosterService: filter/sort/search views over the roster
// - ImportService: CSV bulk import with all-or-nothing commit
// - ExportService: spreadsheet export of a filtered view
// - NoticeService: notice board
// - FormService: frequently-used forms catalogue
// - HelpdeskService: helpdesk tickets
// - EmailService: broadcast email
