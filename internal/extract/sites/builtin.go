package sites

// Built-in adapters. Selector lists are ordered most-stable-first; the last
// entries are broad fallbacks for board redesigns. Bounds follow the field:
// titles and company names are short, descriptions are capped at the
// TrySelectors default.
func builtin() []Adapter {
	return []Adapter{
		{
			Name:        "LinkedIn",
			URLContains: []string{"linkedin.com/jobs", "linkedin.com/comm/jobs"},
			Title: Chain{Selectors: []string{
				".job-details-jobs-unified-top-card__job-title",
				".top-card-layout__title",
				"h1.topcard__title",
				"h1",
			}, Min: 2, Max: 200},
			Company: Chain{Selectors: []string{
				".job-details-jobs-unified-top-card__company-name",
				".topcard__org-name-link",
				".topcard__flavor a",
			}, Min: 2, Max: 100},
			CompanyAlt: Chain{Selectors: []string{
				"a[data-tracking-control-name='public_jobs_topcard-org-name']",
				".sub-nav-cta__optional-url",
			}, Min: 2, Max: 100},
			Location: Chain{Selectors: []string{
				".job-details-jobs-unified-top-card__primary-description-container .tvm__text",
				".topcard__flavor--bullet",
			}, Min: 2, Max: 100},
			Salary: Chain{Selectors: []string{
				".salary.compensation__salary",
				".job-details-jobs-unified-top-card__job-insight span",
			}, Max: 200},
			Description: Chain{Selectors: []string{
				".jobs-description__content",
				".description__text",
				"#job-details",
			}},
		},
		{
			Name:        "Indeed",
			URLContains: []string{"indeed.com"},
			Title: Chain{Selectors: []string{
				"[data-testid='jobsearch-JobInfoHeader-title']",
				".jobsearch-JobInfoHeader-title",
				"h1",
			}, Min: 2, Max: 200},
			Company: Chain{Selectors: []string{
				"[data-testid='inlineHeader-companyName']",
				".jobsearch-InlineCompanyRating-companyHeader",
				"[data-company-name='true']",
			}, Min: 2, Max: 100},
			Location: Chain{Selectors: []string{
				"[data-testid='inlineHeader-companyLocation']",
				"[data-testid='job-location']",
				".jobsearch-JobInfoHeader-subtitle > div",
			}, Min: 2, Max: 100},
			Salary: Chain{Selectors: []string{
				"#salaryInfoAndJobType",
				"[data-testid='attribute_snippet_testid']",
			}, Max: 200},
			Description: Chain{Selectors: []string{"#jobDescriptionText"}},
		},
		{
			Name:        "Glassdoor",
			URLContains: []string{"glassdoor.com"},
			Title: Chain{Selectors: []string{
				"[data-test='job-title']",
				"h1[id^='jd-job-title']",
				"h1",
			}, Min: 2, Max: 200},
			Company: Chain{Selectors: []string{
				"[data-test='employer-name']",
				"[class*='EmployerProfile_employerName']",
			}, Min: 2, Max: 100},
			Location: Chain{Selectors: []string{
				"[data-test='location']",
				"[data-test='emp-location']",
			}, Min: 2, Max: 100},
			Salary: Chain{Selectors: []string{
				"[data-test='detailSalary']",
				"[class*='SalaryEstimate']",
			}, Max: 200},
			Description: Chain{Selectors: []string{
				"[class*='JobDetails_jobDescription']",
				".jobDescriptionContent",
			}},
		},
		{
			Name:        "Greenhouse",
			URLContains: []string{"greenhouse.io"},
			Title: Chain{Selectors: []string{
				".app-title",
				".job__title h1",
				"h1",
			}, Min: 2, Max: 200},
			Company: Chain{Selectors: []string{
				".company-name",
				".job__company",
			}, Min: 2, Max: 100},
			CompanyAlt: Chain{Selectors: []string{
				"#header .company-name",
				".logo-container img[alt]",
			}, Min: 2, Max: 100},
			Location: Chain{Selectors: []string{
				".location",
				".job__location",
			}, Min: 2, Max: 100},
			Description: Chain{Selectors: []string{
				"#content",
				".job__description",
			}},
		},
		{
			Name:        "Lever",
			URLContains: []string{"lever.co"},
			Title: Chain{Selectors: []string{
				".posting-headline h2",
				"h2",
			}, Min: 2, Max: 200},
			Company: Chain{Selectors: []string{
				".main-header-text a",
				".main-footer-text a",
			}, Min: 2, Max: 100},
			Location: Chain{Selectors: []string{
				".posting-categories .location",
				".sort-by-time.posting-category",
				"[data-qa='location']",
			}, Min: 2, Max: 100},
			Salary: Chain{Selectors: []string{
				".posting-categories .salary",
			}, Max: 200},
			Description: Chain{Selectors: []string{
				".posting-description",
				"[data-qa='job-description']",
				".section-wrapper",
			}},
		},
		{
			Name:        "Workday",
			URLContains: []string{"myworkdayjobs.com", "workday.com"},
			Title: Chain{Selectors: []string{
				"[data-automation-id='jobPostingHeader']",
				"h1",
			}, Min: 2, Max: 200},
			Company: Chain{Selectors: []string{
				"[data-automation-id='company']",
				"[data-automation-id='header'] img[alt]",
			}, Min: 2, Max: 100},
			Location: Chain{Selectors: []string{
				"[data-automation-id='locations']",
				"[data-automation-id='location']",
			}, Min: 2, Max: 100},
			Description: Chain{Selectors: []string{
				"[data-automation-id='jobPostingDescription']",
			}},
		},
		{
			Name:        "SmartRecruiters",
			URLContains: []string{"smartrecruiters.com"},
			Title: Chain{Selectors: []string{
				"h1[itemprop='title']",
				".job-title",
				"h1",
			}, Min: 2, Max: 200},
			Company: Chain{Selectors: []string{
				"[itemprop='hiringOrganization']",
				".job-company-name",
			}, Min: 2, Max: 100},
			Location: Chain{Selectors: []string{
				"[itemprop='jobLocation']",
				"spl-job-location",
				".job-location",
			}, Min: 2, Max: 100},
			Description: Chain{Selectors: []string{
				"[itemprop='description']",
				".job-sections",
			}},
		},
		{
			Name:        "ZipRecruiter",
			URLContains: []string{"ziprecruiter.com"},
			Title: Chain{Selectors: []string{
				"h1[class*='job_title']",
				".job_title",
				"h1",
			}, Min: 2, Max: 200},
			Company: Chain{Selectors: []string{
				"[data-testid='job-company-name']",
				".hiring_company_text",
			}, Min: 2, Max: 100},
			Location: Chain{Selectors: []string{
				"[data-testid='job-location']",
				".hiring_location",
			}, Min: 2, Max: 100},
			Salary: Chain{Selectors: []string{
				".salary_range",
				"[class*='compensation']",
			}, Max: 200},
			Description: Chain{Selectors: []string{
				".job_description",
				"[class*='jobDescriptionSection']",
			}},
		},
		{
			Name:        "Monster",
			URLContains: []string{"monster.com"},
			Title: Chain{Selectors: []string{
				"[data-testid='jobTitle']",
				"h1",
			}, Min: 2, Max: 200},
			Company: Chain{Selectors: []string{
				"[data-testid='company']",
				".name",
			}, Min: 2, Max: 100},
			Location: Chain{Selectors: []string{
				"[data-testid='jobDetailLocation']",
				".location",
			}, Min: 2, Max: 100},
			Description: Chain{Selectors: []string{
				"[data-testid='svx-description-container-inner']",
				".job-description",
			}},
		},
		{
			Name:        "Wellfound",
			URLContains: []string{"wellfound.com", "angel.co"},
			Title: Chain{Selectors: []string{
				"h1[class*='styles_title']",
				"h1",
			}, Min: 2, Max: 200},
			Company: Chain{Selectors: []string{
				"a[class*='styles_companyLink']",
				"[class*='styles_companyName']",
			}, Min: 2, Max: 100},
			Location: Chain{Selectors: []string{
				"[class*='styles_location']",
			}, Min: 2, Max: 100},
			Salary: Chain{Selectors: []string{
				"[class*='styles_compensation']",
			}, Max: 200},
			Description: Chain{Selectors: []string{
				"[class*='styles_description']",
				"#job-description",
			}},
		},
		genericAdapter(),
	}
}

// genericAdapter is the unknown-site heuristic path: broad class/id
// substring probes with per-field length bounds tuned to reject navigation
// and footer noise.
func genericAdapter() Adapter {
	return Adapter{
		Name:    "generic",
		Generic: true,
		Title: Chain{Selectors: []string{
			"h1",
			"h2",
			"[class*='job-title']",
			"[class*='title']",
			"[id*='title']",
			"[class*='job']",
		}, Min: 5, Max: 150},
		Company: Chain{Selectors: []string{
			"[class*='company-name']",
			"[class*='company']",
			"[id*='company']",
			"[class*='employer']",
			"[class*='organization']",
		}, Min: 2, Max: 100},
		Location: Chain{Selectors: []string{
			"[class*='location']",
			"[id*='location']",
		}, Min: 2, Max: 100},
		Salary: Chain{Selectors: []string{
			"[class*='salary']",
			"[id*='salary']",
			"[class*='compensation']",
		}, Max: 200},
		Description: Chain{Selectors: []string{
			"[class*='description']",
			"[id*='description']",
			"[class*='job-detail']",
			"article",
			"main",
		}, Min: 50},
	}
}
