package repository

var InsertMembership = insertMembership
