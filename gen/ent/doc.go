package ent
